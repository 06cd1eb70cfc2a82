// Package types defines the compiled query model handed to the
// downstream solver and presenter: optimization queries with linear
// constraint maps and strict category flags, and information queries
// with ordered entity results.
package types

import "sort"

// Query is the compiled form of one user command.
type Query interface {
	// String reconstructs a canonical command echoing the query back
	// to the user.
	String() string
	// QueryVars enumerates every variable the query references, for
	// solver variable-space construction.
	QueryVars() []string
}

// Entity is the read-only view of a database entity the query layer
// consumes. The concrete implementations live with the database.
type Entity interface {
	Var() Var
	DisplayName() string
	Kind() Kind
}

// Output is one produced target. Fixed distinguishes an exact amount
// from an unbounded ("any") output.
type Output struct {
	Var    Var
	Amount int
	Fixed  bool
}

// Input is one consumed source, mirroring Output.
type Input struct {
	Var    Var
	Amount int
	Fixed  bool
}

// Include pins a recipe, power recipe, crafter, or generator as
// available to the solver.
type Include struct {
	Var Var
}

// Exclude forbids a variable entirely.
type Exclude struct {
	Var Var
}

// Objective is the single optimization target: a direction and a
// per-variable coefficient map. Current queries produce exactly one
// coefficient but the map form is kept general.
type Objective struct {
	Maximize     bool
	Coefficients map[string]float64
}

// Vars returns the objective variables in insertion-independent order.
func (o *Objective) Vars() []string {
	return sortedKeys(o.Coefficients)
}

// Category groups same-kind elements of one clause section and carries
// the aggregate strict flag. Adding the same variable twice overwrites
// the element but keeps its original position.
type Category[T any] struct {
	Name     Kind
	Strict   bool
	elements map[string]T
	order    []string
}

func newCategory[T any](name Kind, strict bool) *Category[T] {
	return &Category[T]{
		Name:     name,
		Strict:   strict,
		elements: make(map[string]T),
	}
}

func (c *Category[T]) add(v Var, element T, strict bool) {
	key := v.String()
	if _, ok := c.elements[key]; !ok {
		c.order = append(c.order, key)
	}
	c.elements[key] = element
	c.Strict = c.Strict || strict
}

// Len returns the number of elements in the category.
func (c *Category[T]) Len() int {
	return len(c.elements)
}

// Each visits the elements in insertion order.
func (c *Category[T]) Each(fn func(v string, element T)) {
	for _, key := range c.order {
		fn(key, c.elements[key])
	}
}

// section is one of the four clause sections, organized into categories
// keyed by variable group.
type section[T any] struct {
	categories map[Kind]*Category[T]
	order      []Kind
}

func newSection[T any]() section[T] {
	return section[T]{categories: make(map[Kind]*Category[T])}
}

// ensure creates an empty category so strict defaults exist before any
// element arrives.
func (s *section[T]) ensure(name Kind, strict bool) *Category[T] {
	if c, ok := s.categories[name]; ok {
		return c
	}
	c := newCategory[T](name, strict)
	s.categories[name] = c
	s.order = append(s.order, name)
	return c
}

func (s *section[T]) add(v Var, element T, strict bool) {
	s.ensure(v.Group(), false).add(v, element, strict)
}

// markStrict escalates a category's strict flag without adding an
// element.
func (s *section[T]) markStrict(name Kind) {
	s.ensure(name, false).Strict = true
}

func (s *section[T]) category(name Kind) *Category[T] {
	return s.categories[name]
}

func (s *section[T]) each(fn func(v string, element T)) {
	for _, name := range s.order {
		s.categories[name].Each(fn)
	}
}

// eachCategory visits categories in creation order.
func (s *section[T]) eachCategory(fn func(c *Category[T])) {
	for _, name := range s.order {
		fn(s.categories[name])
	}
}

func strictNonEmpty[T any](c *Category[T]) bool {
	return c != nil && c.Strict && c.Len() > 0
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// map iteration order is runtime-dependent; sort for stable output
	sort.Strings(keys)
	return keys
}
