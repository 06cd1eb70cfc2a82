package compiler

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrorContext indicates the environment where compile errors will be
// displayed.
type ErrorContext string

const (
	// ErrorContextTerminal renders errors with ANSI colors and a caret
	// diagnostic.
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain renders errors without ANSI codes (bots, logs).
	ErrorContextPlain ErrorContext = "plain"
)

// ErrorKind categorizes compile errors for programmatic handling.
type ErrorKind string

const (
	// ErrorKindGrammar means the command did not match any query shape.
	ErrorKindGrammar ErrorKind = "grammar"
	// ErrorKindResolution means an entity span matched nothing in the
	// database.
	ErrorKindResolution ErrorKind = "resolution"
	// ErrorKindSemantic means the command parsed and resolved but is
	// contradictory, e.g. two objectives.
	ErrorKindSemantic ErrorKind = "semantic"
)

// CompileError is a structured compilation failure. Offset is only
// meaningful for grammar errors, Span and Suggestions only for
// resolution errors.
type CompileError struct {
	Kind        ErrorKind
	Message     string
	Query       string
	Offset      int
	Span        string
	Suggestions []string
	Err         error
}

func (e *CompileError) Error() string {
	return e.FormatError(ErrorContextPlain)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// FormatError generates a context-appropriate error message.
func (e *CompileError) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminalError()
	}
	return e.formatPlainError()
}

func (e *CompileError) formatPlainError() string {
	msg := e.Message
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Did you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *CompileError) formatTerminalError() string {
	msg := pterm.Red(e.Message)

	if e.Kind == ErrorKindGrammar && e.Query != "" {
		msg += fmt.Sprintf("\n\n  \"%s\"\n  %s%s",
			e.Query,
			strings.Repeat(" ", e.Offset+1),
			pterm.Yellow("^"),
		)
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("\n\n%s", pterm.Green("Did you mean:"))
		for _, suggestion := range e.Suggestions {
			msg += fmt.Sprintf("\n  - %s", suggestion)
		}
	}
	return msg
}
