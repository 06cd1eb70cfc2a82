// Package resolver matches free-text entity spans from parsed commands
// against the entity database. A span matches an entity when its word
// sequence equals the entity's display name, the pluralized display
// name, the canonical variable, or the typeless variable; spans that
// compile as a regular expression additionally match any of those
// forms in full.
package resolver

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/agext/levenshtein"
	"github.com/gertd/go-pluralize"
	"go.uber.org/zap"

	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/logger"
	"github.com/SatisfactoryWiki/ada/query/types"
)

// DefaultSuggestionLimit caps the "did you mean" list on failed lookups.
const DefaultSuggestionLimit = 5

var (
	spanSeparators = regexp.MustCompile(`[\s\-_:]+`)
	nameSeparators = regexp.MustCompile(`[\s:]+`)
	varSeparators  = regexp.MustCompile(`[:\-]+`)
)

// Resolver resolves entity spans against a database.
type Resolver struct {
	db              gamedata.Database
	plural          *pluralize.Client
	log             *zap.SugaredLogger
	suggestionLimit int
}

// NewResolver builds a resolver over db. A suggestionLimit of zero or
// less falls back to DefaultSuggestionLimit.
func NewResolver(db gamedata.Database, suggestionLimit int) *Resolver {
	if suggestionLimit <= 0 {
		suggestionLimit = DefaultSuggestionLimit
	}
	return &Resolver{
		db:              db,
		plural:          pluralize.NewClient(),
		log:             logger.Logger.With(logger.FieldComponent, "resolver"),
		suggestionLimit: suggestionLimit,
	}
}

// Resolve returns every entity of an allowed kind matching the span, in
// canonical variable order. A span matching nothing returns a
// *NotFoundError carrying suggestions.
func (r *Resolver) Resolve(span string, allowed types.KindSet) ([]types.Entity, error) {
	start := time.Now()
	candidates := r.candidates(allowed)

	spanTokens := splitLower(spanSeparators, span)
	pattern := compileSpanPattern(span)

	var matches []types.Entity
	for _, c := range candidates {
		if r.matches(spanTokens, pattern, c) {
			matches = append(matches, c)
		}
	}

	r.log.Debugw("resolved entity span",
		logger.FieldSpan, span,
		logger.FieldKinds, allowed.Strings(),
		logger.FieldMatches, len(matches),
		logger.FieldDurationUS, time.Since(start).Microseconds(),
	)

	if len(matches) == 0 {
		return nil, &NotFoundError{
			Span:        span,
			Kinds:       allowed.Strings(),
			Suggestions: r.suggest(span, candidates),
		}
	}
	return matches, nil
}

// candidates collects the entities of the allowed kinds, ordered by
// canonical variable.
func (r *Resolver) candidates(allowed types.KindSet) []types.Entity {
	var out []types.Entity
	for _, item := range r.db.Items() {
		if allowed.Has(item.Kind()) {
			out = append(out, item)
		}
	}
	if allowed.Has(types.KindRecipe) {
		for _, recipe := range r.db.Recipes() {
			out = append(out, recipe)
		}
	}
	if allowed.Has(types.KindPowerRecipe) {
		for _, recipe := range r.db.PowerRecipes() {
			out = append(out, recipe)
		}
	}
	if allowed.Has(types.KindCrafter) {
		for _, crafter := range r.db.Crafters() {
			out = append(out, crafter)
		}
	}
	if allowed.Has(types.KindGenerator) {
		for _, generator := range r.db.Generators() {
			out = append(out, generator)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Var().String() < out[j].Var().String()
	})
	return out
}

// matches tests the span against the entity's four name forms: display
// name, pluralized display name, canonical variable, typeless variable.
func (r *Resolver) matches(spanTokens []string, pattern *regexp.Regexp, e types.Entity) bool {
	name := e.DisplayName()
	plural := r.pluralizeName(name)
	v := e.Var()

	forms := [][]string{
		splitLower(nameSeparators, name),
		splitLower(nameSeparators, plural),
		splitLower(varSeparators, v.String()),
		splitLower(varSeparators, v.Name),
	}
	for _, form := range forms {
		if tokensEqual(spanTokens, form) {
			return true
		}
	}

	if pattern != nil {
		for _, form := range []string{
			strings.ToLower(name),
			strings.ToLower(plural),
			v.String(),
			v.Name,
		} {
			if pattern.MatchString(form) {
				return true
			}
		}
	}
	return false
}

// pluralizeName pluralizes the trailing noun of a display name, so
// "Iron Rod" also answers to "iron rods".
func (r *Resolver) pluralizeName(name string) string {
	idx := strings.LastIndexByte(name, ' ')
	if idx < 0 {
		return r.plural.Plural(name)
	}
	return name[:idx+1] + r.plural.Plural(name[idx+1:])
}

// suggest ranks candidate display names by similarity to the span and
// returns the closest few, best first.
func (r *Resolver) suggest(span string, candidates []types.Entity) []string {
	type scored struct {
		name  string
		score float64
	}
	seen := make(map[string]bool)
	var ranked []scored
	for _, c := range candidates {
		name := c.DisplayName()
		if seen[name] {
			continue
		}
		seen[name] = true
		score := levenshtein.Match(strings.ToLower(span), strings.ToLower(name), nil)
		if score > 0 {
			ranked = append(ranked, scored{name: name, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > r.suggestionLimit {
		ranked = ranked[:r.suggestionLimit]
	}
	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.name
	}
	return names
}

// compileSpanPattern builds the full-match pattern for regex-style
// spans. Spans that are not valid expressions fall back to token
// matching only.
func compileSpanPattern(span string) *regexp.Regexp {
	pattern, err := regexp.Compile("^(?:" + strings.ToLower(span) + ")$")
	if err != nil {
		return nil
	}
	return pattern
}

func splitLower(sep *regexp.Regexp, s string) []string {
	parts := sep.Split(strings.ToLower(s), -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func tokensEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
