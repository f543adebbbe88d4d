package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagescout/pagescout/pkg/constants"
	"github.com/pagescout/pagescout/pkg/portfolio"
)

var validateManifest string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a manifest for structural problems",
	Long: `Validate loads a manifest and checks each record for required fields:
a repository identifier, a site URL, and a present (possibly empty) topic
list. Exits non-zero on the first problem found.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateManifest, "manifest", "m", constants.DefaultManifestPath, "manifest path to check")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	manifest, err := portfolio.Load(validateManifest)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if err := manifest.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d projects, no problems found\n", validateManifest, len(manifest))
	return nil
}
