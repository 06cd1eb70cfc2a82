package types

import (
	"sort"
	"strings"
)

// Kind classifies database entities and solver variables by their
// canonical variable prefix.
type Kind string

const (
	KindItem        Kind = "item"
	KindResource    Kind = "resource"
	KindRecipe      Kind = "recipe"
	KindPowerRecipe Kind = "power-recipe"
	KindCrafter     Kind = "crafter"
	KindGenerator   Kind = "generator"
)

// entityKinds is the closed set of canonical variable prefixes.
var entityKinds = map[Kind]bool{
	KindItem:        true,
	KindResource:    true,
	KindRecipe:      true,
	KindPowerRecipe: true,
	KindCrafter:     true,
	KindGenerator:   true,
}

// Valid reports whether k is one of the canonical entity kinds.
func (k Kind) Valid() bool {
	return entityKinds[k]
}

// KindSet restricts entity resolution to a subset of kinds.
type KindSet map[Kind]bool

// Kinds builds a KindSet from its arguments.
func Kinds(kinds ...Kind) KindSet {
	set := make(KindSet, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

// AllKinds builds a set of every canonical entity kind.
func AllKinds() KindSet {
	set := make(KindSet, len(entityKinds))
	for k := range entityKinds {
		set[k] = true
	}
	return set
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s[k]
}

// Strings returns the kinds in the set, sorted, for error messages.
func (s KindSet) Strings() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}

// Var is a single solver variable. Entity variables carry the kind tag
// alongside the slug so downstream code never recovers the kind by
// re-splitting strings; the "kind:slug" form is derived only at
// serialization boundaries. Synthetic variables ("power",
// "unweighted-resources", "alternate-recipes", ...) have no kind and
// pass through to the solver verbatim.
type Var struct {
	Kind Kind
	Name string
}

// EntityVar builds a canonical entity variable.
func EntityVar(kind Kind, slug string) Var {
	return Var{Kind: kind, Name: slug}
}

// SyntheticVar builds a kindless pass-through variable.
func SyntheticVar(name string) Var {
	return Var{Name: name}
}

// ParseVar splits a serialized variable back into kind and slug.
// Strings without a recognized kind prefix are synthetic.
func ParseVar(s string) Var {
	if prefix, rest, ok := strings.Cut(s, ":"); ok && Kind(prefix).Valid() {
		return Var{Kind: Kind(prefix), Name: rest}
	}
	return Var{Name: s}
}

// Synthetic reports whether v is a kindless pass-through variable.
func (v Var) Synthetic() bool {
	return v.Kind == ""
}

// String returns the serialized "kind:slug" form, or the bare name for
// synthetic variables.
func (v Var) String() string {
	if v.Kind == "" {
		return v.Name
	}
	return string(v.Kind) + ":" + v.Name
}

// Group returns the category key a variable belongs to. Entity variables
// group by kind; synthetic variables each form their own group so that
// a "power" output never shares a strict flag with item outputs.
func (v Var) Group() Kind {
	if v.Kind != "" {
		return v.Kind
	}
	return Kind(v.Name)
}
