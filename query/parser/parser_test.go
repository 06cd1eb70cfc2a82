package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entity(span string, offset int) Subject {
	return Subject{Entity: EntityRef{Span: span, Offset: offset}}
}

func literal(name string) Subject {
	return Subject{Literal: name}
}

func TestParseOptimization(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *Optimization
	}{
		{
			name:  "fixed output",
			query: "produce 60 iron plates",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountFixed, Value: 60}, Subject: entity("iron plates", 11)},
				},
			},
		},
		{
			name:  "objective output with inputs",
			query: "produce ? iron rods from iron ore",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountObjective}, Subject: entity("iron rods", 10)},
				},
				Inputs: []Clause{
					{Subject: entity("iron ore", 25)},
				},
			},
		},
		{
			name:  "wildcard variants",
			query: "produce any screws from _ iron ore",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountWildcard}, Subject: entity("screws", 12)},
				},
				Inputs: []Clause{
					{Amount: Amount{Kind: AmountWildcard}, Subject: entity("iron ore", 26)},
				},
			},
		},
		{
			name:  "strict output and strict input",
			query: "produce only 30 screws from only 60 iron ore",
			want: &Optimization{
				Outputs: []Clause{
					{Strict: true, Amount: Amount{Kind: AmountFixed, Value: 30}, Subject: entity("screws", 16)},
				},
				Inputs: []Clause{
					{Strict: true, Amount: Amount{Kind: AmountFixed, Value: 60}, Subject: entity("iron ore", 36)},
				},
			},
		},
		{
			name:  "and joined outputs",
			query: "make 10 iron plates and 20 iron rods",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountFixed, Value: 10}, Subject: entity("iron plates", 8)},
					{Amount: Amount{Kind: AmountFixed, Value: 20}, Subject: entity("iron rods", 27)},
				},
			},
		},
		{
			name:  "plus joined inputs",
			query: "produce ? power from biomass + leaves",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountObjective}, Subject: literal("power")},
				},
				Inputs: []Clause{
					{Subject: entity("biomass", 21)},
					{Subject: entity("leaves", 31)},
				},
			},
		},
		{
			name:  "all four sections",
			query: "produce 60 iron plates from iron ore using only smelters without alternate recipes",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountFixed, Value: 60}, Subject: entity("iron plates", 11)},
				},
				Inputs: []Clause{
					{Subject: entity("iron ore", 28)},
				},
				Includes: []Clause{
					{Subject: entity("smelters", 48)},
				},
				Excludes: []Clause{
					{Subject: literal("alternate-recipes")},
				},
			},
		},
		{
			name:  "exclude joined by or",
			query: "produce 1 reinforced iron plates without cast screw or byproducts",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountFixed, Value: 1}, Subject: entity("reinforced iron plates", 10)},
				},
				Excludes: []Clause{
					{Subject: entity("cast screw", 41)},
					{Subject: literal("byproducts")},
				},
			},
		},
		{
			name:  "resource literals",
			query: "produce ? tickets from weighted resources and space",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountObjective}, Subject: literal("tickets")},
				},
				Inputs: []Clause{
					{Subject: literal("weighted-resources")},
					{Subject: literal("space")},
				},
			},
		},
		{
			name:  "bare resources literal",
			query: "produce ? power from resources",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountObjective}, Subject: literal("power")},
				},
				Inputs: []Clause{
					{Subject: literal("unweighted-resources")},
				},
			},
		},
		{
			name:  "uppercase keywords and span case preserved",
			query: "PRODUCE 60 Iron Plates FROM Iron Ore",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountFixed, Value: 60}, Subject: entity("Iron Plates", 11)},
				},
				Inputs: []Clause{
					{Subject: entity("Iron Ore", 28)},
				},
			},
		},
		{
			name:  "regex span",
			query: "produce 1 iron.*",
			want: &Optimization{
				Outputs: []Clause{
					{Amount: Amount{Kind: AmountFixed, Value: 1}, Subject: entity("iron.*", 10)},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.query)
			require.NoError(t, err)
			require.IsType(t, &Optimization{}, node)
			assert.Equal(t, tt.want, node)
		})
	}
}

func TestParseInfo(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Node
	}{
		{
			name:  "recipes for",
			query: "recipes for iron rods",
			want:  &RecipesFor{Entity: EntityRef{Span: "iron rods", Offset: 12}},
		},
		{
			name:  "recipe of singular",
			query: "recipe of modular frames",
			want:  &RecipesFor{Entity: EntityRef{Span: "modular frames", Offset: 10}},
		},
		{
			name:  "trailing recipes",
			query: "iron rod recipes",
			want:  &RecipesFor{Entity: EntityRef{Span: "iron rod", Offset: 0}},
		},
		{
			name:  "recipes from",
			query: "recipes from iron ore",
			want:  &RecipesFrom{Entity: EntityRef{Span: "iron ore", Offset: 13}},
		},
		{
			name:  "recipes using",
			query: "recipes using screws",
			want:  &RecipesFrom{Entity: EntityRef{Span: "screws", Offset: 14}},
		},
		{
			name:  "entity details",
			query: "iron rod",
			want:  &EntityDetails{Entity: EntityRef{Span: "iron rod", Offset: 0}},
		},
		{
			name:  "single word entity",
			query: "smelter",
			want:  &EntityDetails{Entity: EntityRef{Span: "smelter", Offset: 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		offset  int
		message string
	}{
		{
			name:    "empty query",
			query:   "",
			offset:  0,
			message: "empty query",
		},
		{
			name:    "trailing garbage",
			query:   "produce 60 iron plates 42",
			offset:  23,
			message: `unexpected token "42"`,
		},
		{
			name:    "missing output subject",
			query:   "produce 60",
			offset:  10,
			message: "expected entity expression",
		},
		{
			name:    "missing input subject",
			query:   "produce 60 screws from",
			offset:  22,
			message: "expected entity expression",
		},
		{
			name:    "recipes without preposition",
			query:   "recipes iron rod",
			offset:  8,
			message: `expected 'for', 'of', 'from', 'using', or 'with' after "recipes"`,
		},
		{
			name:    "punctuation in entity span",
			query:   "produce 1 iron, rod",
			offset:  10,
			message: "expected entity expression",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.query)
			require.Error(t, err)
			assert.Nil(t, node)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.query, parseErr.Query)
			assert.Equal(t, tt.offset, parseErr.Offset)
			assert.Equal(t, tt.message, parseErr.Message)
		})
	}
}

func TestParseErrorDiagnostic(t *testing.T) {
	_, err := Parse("produce 60 iron plates 42 from ore")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	lines := strings.Split(parseErr.Diagnostic(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"produce 60 iron plates 42 from ore" ==> failed parse:`, lines[0])
	// caret sits under the offending token, shifted one column for the
	// opening quote
	assert.Equal(t, strings.Repeat(" ", parseErr.Offset+1)+"^", lines[1])
}
