// Package parser turns free-form factory commands into a typed parse
// tree. The grammar recognizes four shapes, tried in order: an
// optimization query ("produce 60 iron plates from iron ore using only
// smelters without alternate recipes"), the two recipe lookups
// ("recipes for X", "recipes from X"), and a bare entity lookup.
//
// Keywords are static token tables; an entity span is the maximal run
// of word, '.', or '*' tokens that is not a reserved keyword. Parse
// failures carry the source offset for caret diagnostics.
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

type clauseKind int

const (
	clauseOutput clauseKind = iota
	clauseInput
	clauseInclude
	clauseExclude
)

// Parse compiles one command string into a parse tree, or returns a
// *ParseError locating the failure.
func Parse(query string) (Node, error) {
	p := &parser{query: query, tokens: lex(query)}

	if p.cur().kind == tokEOF {
		return nil, p.errorf(p.cur(), "empty query")
	}
	if p.cur().kind == tokWord && outputKeywords[p.word()] {
		return p.parseOptimization()
	}
	return p.parseInfo()
}

type parser struct {
	query  string
	tokens []token
	pos    int
}

func (p *parser) cur() token {
	return p.tokens[p.pos]
}

// peek looks one token ahead, clamped to EOF.
func (p *parser) peek() token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// word returns the current token text lowercased if it is a word,
// otherwise "".
func (p *parser) word() string {
	if p.cur().kind != tokWord {
		return ""
	}
	return lower(p.cur().text)
}

func (p *parser) peekWord() string {
	if p.peek().kind != tokWord {
		return ""
	}
	return lower(p.peek().text)
}

func (p *parser) errorf(at token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Query:   p.query,
		Offset:  at.offset,
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) expectEOF() *ParseError {
	if p.cur().kind != tokEOF {
		return p.errorf(p.cur(), "unexpected token %q", p.cur().text)
	}
	return nil
}

// parseOptimization parses the clause sections in their fixed order:
// outputs (mandatory), then optional inputs, includes, and excludes.
func (p *parser) parseOptimization() (Node, error) {
	opt := &Optimization{}

	p.advance() // output keyword
	outputs, err := p.parseClauseList(clauseOutput)
	if err != nil {
		return nil, err
	}
	opt.Outputs = outputs

	if inputKeywords[p.word()] {
		p.advance()
		if opt.Inputs, err = p.parseClauseList(clauseInput); err != nil {
			return nil, err
		}
	}
	if includeKeywords[p.word()] {
		p.advance()
		if opt.Includes, err = p.parseClauseList(clauseInclude); err != nil {
			return nil, err
		}
	}
	if excludeKeywords[p.word()] {
		p.advance()
		if opt.Excludes, err = p.parseClauseList(clauseExclude); err != nil {
			return nil, err
		}
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return opt, nil
}

// parseInfo dispatches the three information query shapes.
func (p *parser) parseInfo() (Node, error) {
	if w := p.word(); w == "recipes" || w == "recipe" {
		p.advance()
		next := p.word()
		switch {
		case next == "for" || next == "of":
			p.advance()
			ref, err := p.parseEntitySpan()
			if err != nil {
				return nil, err
			}
			if err := p.expectEOF(); err != nil {
				return nil, err
			}
			return &RecipesFor{Entity: ref}, nil
		case w == "recipes" && (next == "from" || next == "using" || next == "with"):
			p.advance()
			ref, err := p.parseEntitySpan()
			if err != nil {
				return nil, err
			}
			if err := p.expectEOF(); err != nil {
				return nil, err
			}
			return &RecipesFrom{Entity: ref}, nil
		default:
			return nil, p.errorf(p.cur(), "expected 'for', 'of', 'from', 'using', or 'with' after %q", "recipes")
		}
	}

	ref, err := p.parseEntitySpan()
	if err != nil {
		return nil, err
	}
	if w := p.word(); w == "recipes" || w == "recipe" {
		p.advance()
		if err := p.expectEOF(); err != nil {
			return nil, err
		}
		return &RecipesFor{Entity: ref}, nil
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return &EntityDetails{Entity: ref}, nil
}

// parseClauseList parses one or more clauses joined by "and"/"+"
// (outputs, inputs, includes) or "or"/"nor"/"and" (excludes).
func (p *parser) parseClauseList(kind clauseKind) ([]Clause, error) {
	clause, err := p.parseClause(kind)
	if err != nil {
		return nil, err
	}
	clauses := []Clause{clause}

	for p.atJoiner(kind) {
		p.advance()
		clause, err := p.parseClause(kind)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

func (p *parser) atJoiner(kind clauseKind) bool {
	if kind == clauseExclude {
		return orKeywords[p.word()]
	}
	return p.cur().kind == tokPlus || andKeywords[p.word()]
}

func (p *parser) parseClause(kind clauseKind) (Clause, error) {
	var clause Clause

	switch kind {
	case clauseOutput, clauseInput:
		if p.word() == "only" {
			clause.Strict = true
			p.advance()
		}
		amount, err := p.parseAmount()
		if err != nil {
			return Clause{}, err
		}
		clause.Amount = amount
	case clauseInclude:
		// includes are always strict; a leading "only" is allowed but
		// carries no extra meaning
		if p.word() == "only" {
			p.advance()
		}
	}

	if literal, ok := p.acceptLiteral(kind); ok {
		clause.Subject = Subject{Literal: literal}
		return clause, nil
	}
	ref, err := p.parseEntitySpan()
	if err != nil {
		return Clause{}, err
	}
	clause.Subject = Subject{Entity: ref}
	return clause, nil
}

func (p *parser) parseAmount() (Amount, error) {
	switch p.cur().kind {
	case tokQuestion:
		p.advance()
		return Amount{Kind: AmountObjective}, nil
	case tokInt:
		value, err := strconv.Atoi(p.cur().text)
		if err != nil {
			return Amount{}, p.errorf(p.cur(), "amount %q out of range", p.cur().text)
		}
		p.advance()
		return Amount{Kind: AmountFixed, Value: value}, nil
	case tokUnderscore:
		p.advance()
		return Amount{Kind: AmountWildcard}, nil
	}
	if p.word() == "any" {
		p.advance()
	}
	return Amount{Kind: AmountWildcard}, nil
}

// clause literals, by clause kind. Two-word literals are matched by
// lookahead before the single-word table; the hyphenated canonical
// forms are accepted directly so reconstructed queries parse again.
var (
	outputLiterals = map[string]string{"power": "power", "tickets": "tickets"}
	inputLiterals  = map[string]string{
		"power":                "power",
		"space":                "space",
		"resources":            "unweighted-resources",
		"unweighted-resources": "unweighted-resources",
		"weighted-resources":   "weighted-resources",
	}
	includeLiterals = map[string]string{"space": "space"}
	excludeLiterals = map[string]string{
		"byproducts":        "byproducts",
		"alternate-recipes": "alternate-recipes",
	}
)

func (p *parser) acceptLiteral(kind clauseKind) (string, bool) {
	word := p.word()
	if word == "" {
		return "", false
	}

	// two-word literals
	switch kind {
	case clauseInput:
		if (word == "unweighted" || word == "weighted") && p.peekWord() == "resources" {
			p.advance()
			p.advance()
			return word + "-resources", true
		}
	case clauseExclude:
		if word == "alternate" && p.peekWord() == "recipes" {
			p.advance()
			p.advance()
			return "alternate-recipes", true
		}
	}

	var table map[string]string
	switch kind {
	case clauseOutput:
		table = outputLiterals
	case clauseInput:
		table = inputLiterals
	case clauseInclude:
		table = includeLiterals
	case clauseExclude:
		table = excludeLiterals
	}
	if canonical, ok := table[word]; ok {
		p.advance()
		return canonical, true
	}
	return "", false
}

// parseEntitySpan consumes the maximal run of entity words that are
// not reserved keywords and joins them with single spaces.
func (p *parser) parseEntitySpan() (EntityRef, error) {
	start := p.cur()
	var words []string
	for p.cur().kind == tokWord && !spanTerminators[p.word()] && isEntityWord(p.cur().text) {
		words = append(words, p.cur().text)
		p.advance()
	}
	if len(words) == 0 {
		return EntityRef{}, p.errorf(start, "expected entity expression")
	}
	return EntityRef{Span: strings.Join(words, " "), Offset: start.offset}, nil
}
