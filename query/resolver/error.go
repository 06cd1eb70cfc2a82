package resolver

import (
	"fmt"
	"strings"
)

// NotFoundError reports an entity span that matched nothing in the
// database. Suggestions hold the closest display names by edit
// distance, best first; rendering them is left to the caller.
type NotFoundError struct {
	Span        string
	Kinds       []string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s matching %q", strings.Join(e.Kinds, " or "), e.Span)
}
