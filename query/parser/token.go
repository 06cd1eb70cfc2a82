package parser

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokInt
	tokQuestion
	tokUnderscore
	tokPlus
	tokEOF
)

type token struct {
	kind   tokenKind
	text   string
	offset int // byte offset in the source query
}

// lex splits a command into whitespace-separated tokens, classifying
// integers and the single-character value/joiner tokens. Word validity
// (entity words allow only letters, '.' and '*') is checked by the
// grammar so errors point at the right position.
func lex(query string) []token {
	var tokens []token
	i := 0
	for i < len(query) {
		for i < len(query) && unicode.IsSpace(rune(query[i])) {
			i++
		}
		if i >= len(query) {
			break
		}
		start := i
		for i < len(query) && !unicode.IsSpace(rune(query[i])) {
			i++
		}
		text := query[start:i]
		tokens = append(tokens, token{kind: classify(text), text: text, offset: start})
	}
	tokens = append(tokens, token{kind: tokEOF, text: "", offset: len(query)})
	return tokens
}

func classify(text string) tokenKind {
	switch text {
	case "?":
		return tokQuestion
	case "_":
		return tokUnderscore
	case "+":
		return tokPlus
	}
	if isInteger(text) {
		return tokInt
	}
	return tokWord
}

func isInteger(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isEntityWord reports whether a word may appear inside an entity
// span: letters and digits, the ':' '-' '_' separators of canonical
// variables, and the '.' and '*' regex helpers.
func isEntityWord(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ':', '-', '_', '.', '*':
		default:
			return false
		}
	}
	return true
}

// Keyword tables. Keywords are matched case-insensitively and are
// reserved: an entity span cannot contain them, so a collision with an
// entity's literal name is a known limitation rather than a parse bug.
var (
	outputKeywords  = map[string]bool{"produce": true, "make": true, "create": true, "output": true}
	inputKeywords   = map[string]bool{"from": true, "input": true}
	includeKeywords = map[string]bool{"using": true, "with": true}
	excludeKeywords = map[string]bool{"without": true, "excluding": true}

	andKeywords = map[string]bool{"and": true}
	orKeywords  = map[string]bool{"or": true, "nor": true, "and": true}
)

// spanTerminators end a free-text entity span: every clause keyword,
// the clause joiners, and the recipe-lookup keywords.
var spanTerminators = buildSpanTerminators()

func buildSpanTerminators() map[string]bool {
	terminators := map[string]bool{
		"and": true, "or": true, "nor": true,
		"recipe": true, "recipes": true,
	}
	for _, kws := range []map[string]bool{outputKeywords, inputKeywords, includeKeywords, excludeKeywords} {
		for kw := range kws {
			terminators[kw] = true
		}
	}
	return terminators
}

func lower(text string) string {
	return strings.ToLower(text)
}
