package dom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is the cause of a ParseError for markup not matching the grammar.
var ErrSyntax = errors.New("syntax error")

// ErrTooDeep is the cause of a ParseError for elements nested deeper than
// the configured maximum depth.
var ErrTooDeep = errors.New("elements nested too deeply")

// ErrTrailingContent is the cause of a ParseError for content following the
// root element, if option RejectTrailing is set.
var ErrTrailingContent = errors.New("content after root element")

// ErrTagMismatch is the cause of a ParseError for a close tag not matching
// its open tag, if option MatchCloseTags is set.
var ErrTagMismatch = errors.New("mismatched close tag")

// ParseError describes where and why markup could not be parsed.
// Use errors.Is with one of the Err… variables to find out the cause.
type ParseError struct {
	Offset   int      // 0-based byte offset into the input
	Line     int      // 1-based line number
	Column   int      // 1-based column, counted in bytes
	Expected []string // constructs the grammar would have accepted at Offset
	Found    string   // short excerpt of the input at Offset
	Err      error    // one of the Err… variables
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dom: line %d, col %d (offset %d): %v", e.Line, e.Column, e.Offset, e.Err)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ": expected %s, found %s", strings.Join(e.Expected, " or "), e.Found)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates an error for position offset of buf.
func newParseError(buf []byte, offset int, cause error, expected ...string) *ParseError {
	line := 1 + bytes.Count(buf[:offset], []byte{'\n'})
	col := offset + 1
	if nl := bytes.LastIndexByte(buf[:offset], '\n'); nl >= 0 {
		col = offset - nl
	}
	return &ParseError{
		Offset:   offset,
		Line:     line,
		Column:   col,
		Expected: expected,
		Found:    excerpt(buf, offset),
		Err:      cause,
	}
}

const excerptLength = 12

func excerpt(buf []byte, offset int) string {
	if offset >= len(buf) {
		return "end of input"
	}
	end := offset + excerptLength
	if end > len(buf) {
		end = len(buf)
	}
	return fmt.Sprintf("%q", buf[offset:end])
}
