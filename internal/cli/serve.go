package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/keepachangelog/internal/config"
	"github.com/ariel-frischer/keepachangelog/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the changelog over HTTP",
	Long: `Serve the changelog over HTTP.

Endpoints, relative to --path (default /changelog):
  GET /changelog            released versions as JSON ({} when the file is missing)
  GET /changelog/{version}  one version as JSON, 404 when absent
  GET /changelog.md         Markdown (?raw=true for the file as written)
  GET /changelog.html       HTML

The parsed changelog is cached and reloaded when the file changes, unless
--watch=false is given, in which case the file is read on every request.`,
	Example: `  keepachangelog serve
  keepachangelog serve --addr 127.0.0.1:9000 --path /api/changelog
  KEEPACHANGELOG_SERVE__SHOW_UNRELEASED=true keepachangelog serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.GroupID = GroupIntegration
	serveCmd.Flags().String("addr", "", "Listen address (default: :8080)")
	serveCmd.Flags().String("path", "", "URL path of the JSON endpoint (default: /changelog)")
	serveCmd.Flags().Bool("show-unreleased", false, "Include unreleased sections in the JSON endpoint")
	serveCmd.Flags().Bool("watch", true, "Cache the changelog and reload it when the file changes")
	bindConfigKey(serveCmd.Flags(), "addr", "serve.addr")
	bindConfigKey(serveCmd.Flags(), "path", "serve.path")
	bindConfigKey(serveCmd.Flags(), "show-unreleased", "serve.show_unreleased")
	bindConfigKey(serveCmd.Flags(), "watch", "serve.watch")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context())

	srv := server.New(serverConfig(cfg), logger)
	return srv.Run(cmd.Context())
}

// serverConfig maps the loaded configuration to the server's.
func serverConfig(cfg *config.Configuration) server.Config {
	return server.Config{
		Addr:           cfg.Serve.Addr,
		Path:           cfg.Serve.Path,
		File:           cfg.File,
		ShowUnreleased: cfg.Serve.ShowUnreleased,
		Watch:          cfg.Serve.Watch,
	}
}
