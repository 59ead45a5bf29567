package search

import "errors"

// Failure kinds reported by the search routine. Callers distinguish them
// with errors.Is; the MCP adapter turns them into JSON-RPC error responses.
var (
	// ErrInvalidArgument covers an empty or whitespace-only keyword, and an
	// invalid regular expression in regex mode.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileNotFound means the path does not resolve to an existing file.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadFailure means the file exists but could not be opened or
	// decoded as text.
	ErrReadFailure = errors.New("read failure")
)
