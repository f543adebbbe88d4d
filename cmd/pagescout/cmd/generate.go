package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pagescout/pagescout/internal/config"
	"github.com/pagescout/pagescout/internal/sources/github"
	"github.com/pagescout/pagescout/pkg/constants"
	"github.com/pagescout/pagescout/pkg/enhance"
	"github.com/pagescout/pagescout/pkg/logging"
	"github.com/pagescout/pagescout/pkg/portfolio"
	"github.com/pagescout/pagescout/pkg/scan"
)

var (
	generateOwner   string
	generateOutput  string
	generateFormat  string
	generateEnhance bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan an account and write the project manifest",
	Long: `Generate enumerates the account's repositories through the GitHub REST
API, keeps the ones with an active Pages site, and writes them to the
manifest, fully replacing any previous contents.

The owner is taken from --owner, then PAGESCOUT_OWNER, then GITHUB_OWNER.
A GITHUB_TOKEN is required; runs without one fail before any network call.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateOwner, "owner", "", "account to scan (default $PAGESCOUT_OWNER or $GITHUB_OWNER)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", constants.DefaultManifestPath, "manifest path to write")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "json", "manifest format (json, yaml)")
	generateCmd.Flags().BoolVar(&generateEnhance, "enhance", false, "fill empty descriptions with Gemini-generated ones (requires $GEMINI_API_KEY)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.Default()

	owner := generateOwner
	if owner == "" {
		owner = config.FirstString("PAGESCOUT_OWNER", "GITHUB_OWNER")
	}
	token := config.GetString("GITHUB_TOKEN")

	format, err := portfolio.ParseFormat(generateFormat)
	if err != nil {
		return err
	}

	scanner, err := scan.New(github.NewClient(token), scan.Config{
		Owner: owner,
		Token: token,
	}, scan.WithLogger(logger))
	if err != nil {
		return err
	}

	manifest, report, err := scanner.Run(ctx)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", owner, err)
	}

	if generateEnhance {
		manifest = maybeEnhance(ctx, config.GetString("GEMINI_API_KEY"), manifest, logger)
	}

	if err := manifest.Save(generateOutput, portfolio.WithFormat(format)); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d projects to %s (%s)\n", len(manifest), generateOutput, report)
	return nil
}

// maybeEnhance fills empty descriptions through the Gemini API. Enhancement
// never fails the run: a missing API key or an unusable client logs a
// warning and returns the manifest unchanged.
func maybeEnhance(ctx context.Context, apiKey string, manifest portfolio.Manifest, logger *zerolog.Logger) portfolio.Manifest {
	if apiKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set, skipping description enhancement")
		return manifest
	}

	generator, err := enhance.NewGemini(ctx, apiKey)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not create Gemini client, skipping description enhancement")
		return manifest
	}

	enhancer := enhance.New(generator, enhance.WithLogger(logger))
	return enhancer.Batch(ctx, manifest)
}
