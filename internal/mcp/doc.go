// Package mcp implements the Model Context Protocol (MCP) server for
// kwsearch using the mcp-go library.
//
// The server exposes a single tool, search_keyword, which performs a
// case-insensitive keyword search over a text file and reports matching
// 1-based line numbers with the full line text. Protocol handling
// (initialize handshake, tools/list, tools/call, JSON-RPC 2.0 framing) is
// provided by mcp-go; this package supplies the tool schema, the typed
// argument validation at the boundary, and the mapping between the search
// routine's results and the protocol envelopes.
//
// # Error handling
//
// The search routine signals failures as typed sentinel errors
// (search.ErrInvalidArgument, search.ErrFileNotFound, search.ErrReadFailure).
// The tool handler is the single point that converts every failure into a
// JSON-RPC error response: it returns the typed error to mcp-go, which
// renders the standard error object (code + message). A panicking handler is
// caught by the server's recovery middleware, so no request can crash the
// process.
//
// # Transports
//
// Two transports are supported, selected by configuration:
//
//   - stdio: JSON-RPC over stdin/stdout, for assistants that spawn the
//     server as a subprocess. Logs go to stderr or a file only.
//   - http: the streamable HTTP transport on the configured host:port,
//     serving the MCP endpoint at /mcp.
//
// Each tool invocation is an independent request/response cycle with no
// session state; handlers share nothing mutable and are safe to invoke
// concurrently.
package mcp
