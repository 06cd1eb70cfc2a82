package parser

import (
	"fmt"
	"strings"
)

// ParseError reports a command that does not match any recognized query
// shape. It carries the original text and the byte offset of the
// failure so callers can render a caret diagnostic.
type ParseError struct {
	Query   string
	Offset  int
	Message string
}

// Error implements the error interface with a single-line message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q at offset %d: %s", e.Query, e.Offset, e.Message)
}

// Diagnostic renders the query with a caret marking the failing
// position:
//
//	"produce 60 iron plates banana" ==> failed parse:
//	                        ^
//	unexpected token "banana"
func (e *ParseError) Diagnostic() string {
	var b strings.Builder
	b.WriteString("\"")
	b.WriteString(e.Query)
	b.WriteString("\" ==> failed parse:\n")
	// +1 aligns the caret under the offset inside the quoted query.
	b.WriteString(strings.Repeat(" ", e.Offset+1))
	b.WriteString("^\n")
	b.WriteString(e.Message)
	return b.String()
}
