// Package search implements the keyword search routine behind the
// search_keyword tool: a linear, read-only scan of a single text file that
// reports every line containing the keyword, with 1-based line numbers.
//
// The guaranteed contract is a case-insensitive literal substring match.
// Regex matching and case-sensitive matching are optional extras selected
// through Options; they never change the baseline behavior of Search.
package search

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Match is one reported hit: the 1-based line number and the full line text
// without its trailing newline.
type Match struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Result holds every match of one search, in ascending line order.
type Result struct {
	Matches []Match `json:"matches"`
	Count   int     `json:"count"`
}

// Options selects the optional matching modes. The zero value is the
// baseline: case-insensitive literal substring search.
type Options struct {
	// CaseSensitive disables case folding of keyword and line.
	CaseSensitive bool

	// UseRegex interprets the keyword as a Go regular expression. An
	// invalid pattern fails with ErrInvalidArgument.
	UseRegex bool
}

// maxLineSize bounds a single scanned line. Files are expected to be small,
// local text files; anything beyond this is reported as a read failure.
const maxLineSize = 1024 * 1024

// Search scans the file at path and reports every line that contains
// keyword as a case-insensitive substring. Case folding is plain Unicode
// lower-casing on both sides, never locale-sensitive collation, so results
// are reproducible across environments.
//
// A file with no matching line yields an empty Result, not an error.
func Search(path, keyword string) (*Result, error) {
	return SearchWithOptions(path, keyword, Options{})
}

// SearchWithOptions is Search with the optional matching modes enabled.
//
// The keyword is validated before any filesystem access: an empty or
// whitespace-only keyword fails with ErrInvalidArgument regardless of path.
// A path that does not exist fails with ErrFileNotFound; a path that exists
// but cannot be read as UTF-8 text fails with ErrReadFailure.
func SearchWithOptions(path, keyword string, opts Options) (*Result, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: keyword must be a non-empty string", ErrInvalidArgument)
	}

	matches, err := newMatcher(keyword, opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: cannot open %s: %v", ErrReadFailure, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot stat %s: %v", ErrReadFailure, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadFailure, path)
	}

	result := &Result{Matches: []Match{}}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("%w: %s is not valid UTF-8 text (line %d)", ErrReadFailure, path, line)
		}
		if matches(text) {
			result.Matches = append(result.Matches, Match{Line: line, Text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrReadFailure, path, err)
	}

	result.Count = len(result.Matches)
	return result, nil
}

// newMatcher builds the per-line predicate for the requested mode.
func newMatcher(keyword string, opts Options) (func(string) bool, error) {
	if opts.UseRegex {
		pattern := keyword
		if !opts.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid regex pattern: %v", ErrInvalidArgument, err)
		}
		return re.MatchString, nil
	}

	if opts.CaseSensitive {
		return func(line string) bool {
			return strings.Contains(line, keyword)
		}, nil
	}

	needle := strings.ToLower(keyword)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), needle)
	}, nil
}
