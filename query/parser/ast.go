package parser

// Node is the parse tree root: exactly one of the four query shapes.
type Node interface {
	node()
}

// AmountKind discriminates the value position of a clause.
type AmountKind int

const (
	// AmountWildcard is "any", "_", or an omitted value.
	AmountWildcard AmountKind = iota
	// AmountFixed is a concrete non-negative integer.
	AmountFixed
	// AmountObjective is the "?" marker. At most one clause in a query
	// may carry it; the semantic pass enforces that.
	AmountObjective
)

// Amount is the parsed value of an output or input clause.
type Amount struct {
	Kind  AmountKind
	Value int
}

// EntityRef is a free-text entity span with its source offset for
// error reporting.
type EntityRef struct {
	Span   string
	Offset int
}

// Subject is the target of a clause: either a reserved literal in its
// canonical form ("power", "unweighted-resources", ...) or a free-text
// entity span to be resolved against the database.
type Subject struct {
	Literal string
	Entity  EntityRef
}

// IsLiteral reports whether the subject is a reserved literal.
func (s Subject) IsLiteral() bool {
	return s.Literal != ""
}

// Clause is one parsed fragment of an optimization command.
type Clause struct {
	Strict  bool
	Amount  Amount
	Subject Subject
}

// Optimization is a production-planning command. Outputs are mandatory;
// a nil Inputs slice means the input section was absent entirely, which
// triggers the default minimize-resources objective downstream.
type Optimization struct {
	Outputs  []Clause
	Inputs   []Clause
	Includes []Clause
	Excludes []Clause
}

// RecipesFor looks up recipes producing an item, crafted in a crafter,
// or run in a generator.
type RecipesFor struct {
	Entity EntityRef
}

// RecipesFrom looks up recipes consuming an item as an ingredient.
type RecipesFrom struct {
	Entity EntityRef
}

// EntityDetails looks up entities of any kind by name.
type EntityDetails struct {
	Entity EntityRef
}

func (*Optimization) node()  {}
func (*RecipesFor) node()    {}
func (*RecipesFrom) node()   {}
func (*EntityDetails) node() {}
