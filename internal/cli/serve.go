package cli

import (
	"fmt"

	"kwsearch/internal/config"
	"kwsearch/internal/logging"
	"kwsearch/internal/mcp"

	"github.com/spf13/cobra"
)

var (
	flagTransport string
	flagHost      string
	flagPort      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the kwsearch MCP server on the configured transport.

Configuration is resolved in order: built-in defaults, the YAML config
file, MCP_HOST / MCP_PORT / MCP_TRANSPORT environment variables, then
any flags given here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewAppLogger()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Flags override config and environment, but only when set.
		if cmd.Flags().Changed("transport") {
			cfg.Transport = flagTransport
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = flagHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = flagPort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger.Info("Configuration loaded", "transport", cfg.Transport, "addr", cfg.Addr())

		srv := mcp.NewServer(cfg, logger)
		if err := srv.Start(cmd.Context()); err != nil {
			logger.Error("MCP server failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagTransport, "transport", config.DefaultTransport, "transport to serve on (stdio or http)")
	serveCmd.Flags().StringVar(&flagHost, "host", config.DefaultHost, "bind host for the http transport")
	serveCmd.Flags().IntVar(&flagPort, "port", config.DefaultPort, "bind port for the http transport")
}
