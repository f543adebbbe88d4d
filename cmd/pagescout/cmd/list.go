package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/pagescout/pagescout/pkg/constants"
	"github.com/pagescout/pagescout/pkg/portfolio"
)

var (
	listManifest string
	listOutput   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects in a manifest",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listManifest, "manifest", "m", constants.DefaultManifestPath, "manifest path to read")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "output format (table, json, yaml)")
}

func runList(cmd *cobra.Command, _ []string) error {
	manifest, err := portfolio.Load(listManifest)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	switch listOutput {
	case "table":
		return printTable(cmd, manifest)
	case "json":
		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(manifest)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (expected table, json, or yaml)", listOutput)
	}
}

func printTable(cmd *cobra.Command, manifest portfolio.Manifest) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tREPO\tURL\tDATE\tTOPICS")

	for _, p := range manifest {
		name := p.Name
		if name == "" {
			name = portfolio.FallbackName(p.Repo)
		}

		date := ""
		if !p.Date.IsZero() {
			date = p.Date.Format("2006-01-02")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			name, p.Repo, p.URL, date, strings.Join(p.Topics, ","))
	}

	return w.Flush()
}
