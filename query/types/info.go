package types

import "strings"

// InfoQuery is the compiled form of a lookup command: an ordered list
// of resolved entities with no constraint semantics.
type InfoQuery struct {
	Entities []Entity
}

// Add appends an entity, preserving order.
func (q *InfoQuery) Add(e Entity) {
	q.Entities = append(q.Entities, e)
}

// Len returns the number of matched entities.
func (q *InfoQuery) Len() int {
	return len(q.Entities)
}

// QueryVars enumerates the matched entity variables in result order.
func (q *InfoQuery) QueryVars() []string {
	vars := make([]string, 0, len(q.Entities))
	for _, e := range q.Entities {
		vars = append(vars, e.Var().String())
	}
	return vars
}

// String lists the matched variables.
func (q *InfoQuery) String() string {
	return strings.Join(q.QueryVars(), ", ")
}
