package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagescout/pagescout/internal/server"
	"github.com/pagescout/pagescout/pkg/constants"
	"github.com/pagescout/pagescout/pkg/logging"
)

var (
	servePort     int
	serveManifest string
	serveDir      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project catalog over HTTP",
	Long: `Serve hosts the web catalog and a small JSON API over the manifest.
The manifest file is re-read on every request, so regenerating it is picked
up without a restart. Pass --dir to serve catalog assets from disk instead
of the embedded copies.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", constants.DefaultServePort, "port to listen on")
	serveCmd.Flags().StringVarP(&serveManifest, "manifest", "m", constants.DefaultManifestPath, "manifest path to serve")
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "serve web assets from this directory instead of the embedded ones")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := server.DefaultConfig()
	cfg.Port = servePort
	cfg.ManifestPath = serveManifest
	cfg.AssetsDir = serveDir

	srv := server.New(cfg, server.WithLogger(logging.Default()))
	return srv.ListenAndServe(cmd.Context())
}
