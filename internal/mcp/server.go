package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"kwsearch/internal/config"
	"kwsearch/internal/logging"
	"kwsearch/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName identifies this server in the MCP initialize handshake.
	ServerName = "kwsearch"

	// ServerVersion is reported alongside ServerName.
	ServerVersion = "1.0.0"
)

// searchArgs is the typed shape of the search_keyword tool arguments.
// Incoming JSON is bound into this struct and validated before the search
// routine runs.
type searchArgs struct {
	FilePath string `json:"file_path"`
	Keyword  string `json:"keyword"`
	UseRegex bool   `json:"use_regex,omitempty"`
}

// Server wraps an mcp-go server with kwsearch's configuration and logger.
type Server struct {
	config     *config.Config
	logger     *logging.AppLogger
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

// NewServer creates the MCP server and registers the search_keyword tool.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// registerTools declares the tool surface. search_keyword is the only tool.
func (s *Server) registerTools() {
	tool := mcp.NewTool("search_keyword",
		mcp.WithDescription("Search for a keyword in a text file (case-insensitive)"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the file to search"),
		),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Keyword to search for"),
		),
		mcp.WithBoolean("use_regex",
			mcp.Description("Interpret the keyword as a Go regular expression instead of a literal substring"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleSearchKeyword)
}

// Start runs the server on the configured transport and blocks until the
// transport shuts down or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	switch s.config.Transport {
	case config.TransportStdio:
		s.logger.Info("Starting MCP server on stdio")
		stdio := server.NewStdioServer(s.mcpServer)
		if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			return fmt.Errorf("stdio server failed: %w", err)
		}
		return nil

	case config.TransportHTTP:
		addr := s.config.Addr()
		s.logger.Info("Starting MCP server over HTTP", "addr", addr, "endpoint", "/mcp")
		s.httpServer = server.NewStreamableHTTPServer(s.mcpServer,
			server.WithEndpointPath("/mcp"),
		)
		if err := s.httpServer.Start(addr); err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown transport %q", s.config.Transport)
	}
}

// Stop gracefully shuts down the MCP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping MCP server")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	// The stdio transport stops when its context is cancelled or stdin
	// reaches EOF.
	return nil
}

// handleSearchKeyword adapts a tool invocation to the search routine.
// Every failure is returned as a typed error so the protocol layer reports
// it as a JSON-RPC error object instead of propagating a fault.
func (s *Server) handleSearchKeyword(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchArgs
	if err := req.BindArguments(&args); err != nil {
		return nil, fmt.Errorf("%w: %v", search.ErrInvalidArgument, err)
	}
	if strings.TrimSpace(args.FilePath) == "" {
		return nil, fmt.Errorf("%w: missing 'file_path' in args", search.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.Keyword) == "" {
		return nil, fmt.Errorf("%w: missing 'keyword' in args", search.ErrInvalidArgument)
	}

	s.logger.Debug("search_keyword invoked",
		"file_path", args.FilePath,
		"use_regex", args.UseRegex,
	)

	result, err := search.SearchWithOptions(args.FilePath, args.Keyword, search.Options{
		UseRegex: args.UseRegex,
	})
	if err != nil {
		s.logger.Error("search_keyword failed", "file_path", args.FilePath, "error", err)
		return nil, err
	}

	s.logger.Debug("search_keyword completed", "file_path", args.FilePath, "count", result.Count)
	return mcp.NewToolResultStructured(result, formatMatches(result)), nil
}

// formatMatches renders the fallback text payload: a count header followed
// by one "Line N: <content>" entry per match.
func formatMatches(result *search.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matches:", result.Count)
	for _, m := range result.Matches {
		fmt.Fprintf(&b, "\nLine %d: %s", m.Line, m.Text)
	}
	return b.String()
}
