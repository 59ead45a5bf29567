// Package main is the entry point for the kwsearch MCP server.
//
// The binary wires together configuration loading, logging setup, and the
// MCP server startup; all command handling lives in internal/cli.
package main

import (
	"os"

	"kwsearch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
