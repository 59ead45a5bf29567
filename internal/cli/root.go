// Package cli contains the kwsearch command-line commands.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kwsearch",
	Short: "MCP keyword search server",
	Long: `kwsearch is a Model Context Protocol server exposing a single tool,
search_keyword, that scans a text file for case-insensitive keyword
matches and reports matching line numbers.

Example usage:
  kwsearch serve                      # serve MCP over HTTP on 127.0.0.1:8080
  kwsearch serve --transport stdio    # serve MCP over stdin/stdout
  MCP_PORT=9090 kwsearch serve        # environment overrides`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}
