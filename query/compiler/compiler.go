// Package compiler turns free-text factory commands into executable
// queries: production-planning commands compile to an
// OptimizationQuery with an objective and eq/ge/le constraint maps,
// lookup commands compile to an InfoQuery listing the requested
// entities. Grammar, resolution, and semantic failures all surface as
// a *CompileError.
package compiler

import (
	"time"

	"go.uber.org/zap"

	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/logger"
	"github.com/SatisfactoryWiki/ada/query/parser"
	"github.com/SatisfactoryWiki/ada/query/resolver"
	"github.com/SatisfactoryWiki/ada/query/types"
)

// defaultObjectiveVar is minimized when a command names outputs but no
// input section at all.
const defaultObjectiveVar = "unweighted-resources"

// Allowed entity kinds per clause position.
var (
	outputKinds  = types.Kinds(types.KindItem)
	inputKinds   = types.Kinds(types.KindResource, types.KindItem)
	includeKinds = types.Kinds(types.KindRecipe, types.KindPowerRecipe, types.KindCrafter, types.KindGenerator)
	lookupKinds  = types.Kinds(types.KindItem, types.KindResource, types.KindCrafter, types.KindGenerator)
	allKinds     = types.AllKinds()
)

// Compiler compiles commands against one entity database.
type Compiler struct {
	db       gamedata.Database
	resolver *resolver.Resolver
	log      *zap.SugaredLogger
}

// New builds a compiler over db, resolving spans through r.
func New(db gamedata.Database, r *resolver.Resolver) *Compiler {
	return &Compiler{
		db:       db,
		resolver: r,
		log:      logger.Logger.With(logger.FieldComponent, "compiler"),
	}
}

// Compile parses and resolves one command. The returned query is an
// *types.OptimizationQuery or *types.InfoQuery; failures are always a
// *CompileError.
func (c *Compiler) Compile(raw string) (types.Query, error) {
	start := time.Now()

	node, err := parser.Parse(raw)
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			return nil, &CompileError{
				Kind:    ErrorKindGrammar,
				Message: parseErr.Message,
				Query:   raw,
				Offset:  parseErr.Offset,
				Err:     errors.Wrap(errors.ErrInvalidQuery, parseErr.Message),
			}
		}
		return nil, err
	}

	var (
		query types.Query
		shape string
	)
	switch n := node.(type) {
	case *parser.Optimization:
		shape = "optimization"
		query, err = c.compileOptimization(raw, n)
	case *parser.RecipesFor:
		shape = "recipes-for"
		query, err = c.compileRecipesFor(raw, n)
	case *parser.RecipesFrom:
		shape = "recipes-from"
		query, err = c.compileRecipesFrom(raw, n)
	case *parser.EntityDetails:
		shape = "entity-details"
		query, err = c.compileEntityDetails(raw, n)
	default:
		return nil, errors.Newf("unhandled parse node %T", node)
	}
	if err != nil {
		return nil, err
	}

	c.log.Debugw("compiled query",
		logger.FieldQuery, raw,
		logger.FieldShape, shape,
		logger.FieldDurationUS, time.Since(start).Microseconds(),
	)
	return query, nil
}

func (c *Compiler) compileOptimization(raw string, node *parser.Optimization) (*types.OptimizationQuery, error) {
	q := types.NewOptimizationQuery()

	for _, clause := range node.Outputs {
		vars, err := c.subjectVars(raw, clause.Subject, outputKinds)
		if err != nil {
			return nil, err
		}
		switch clause.Amount.Kind {
		case parser.AmountObjective:
			if err := setObjective(q, raw, vars, true); err != nil {
				return nil, err
			}
			if clause.Strict {
				for _, v := range vars {
					q.MarkOutputStrict(v)
				}
			}
		case parser.AmountFixed:
			for _, v := range vars {
				q.AddOutput(v, clause.Amount.Value, true, clause.Strict)
			}
		default:
			for _, v := range vars {
				q.AddOutput(v, 0, false, clause.Strict)
			}
		}
	}

	for _, clause := range node.Inputs {
		vars, err := c.subjectVars(raw, clause.Subject, inputKinds)
		if err != nil {
			return nil, err
		}
		switch clause.Amount.Kind {
		case parser.AmountObjective:
			if err := setObjective(q, raw, vars, false); err != nil {
				return nil, err
			}
			if clause.Strict {
				for _, v := range vars {
					q.MarkInputStrict(v)
				}
			}
		case parser.AmountFixed:
			for _, v := range vars {
				q.AddInput(v, clause.Amount.Value, true, clause.Strict)
			}
		default:
			for _, v := range vars {
				q.AddInput(v, 0, false, clause.Strict)
			}
		}
	}

	for _, clause := range node.Includes {
		vars, err := c.subjectVars(raw, clause.Subject, includeKinds)
		if err != nil {
			return nil, err
		}
		for _, v := range vars {
			q.AddInclude(v)
		}
	}

	for _, clause := range node.Excludes {
		vars, err := c.subjectVars(raw, clause.Subject, includeKinds)
		if err != nil {
			return nil, err
		}
		for _, v := range vars {
			q.AddExclude(v)
		}
	}

	// A command with no input section minimizes total resource use,
	// unless an explicit "?" objective was given.
	if node.Inputs == nil && q.Objective == nil {
		q.Objective = &types.Objective{
			Coefficients: map[string]float64{defaultObjectiveVar: -1},
		}
	}
	return q, nil
}

// setObjective installs the "?" objective over vars: maximized outputs
// carry coefficient 1, minimized inputs carry -1.
func setObjective(q *types.OptimizationQuery, raw string, vars []types.Var, maximize bool) error {
	if q.Objective != nil {
		return &CompileError{
			Kind:    ErrorKindSemantic,
			Message: "only one objective may be specified",
			Query:   raw,
			Err:     errors.Wrap(errors.ErrInvalidQuery, "duplicate objective"),
		}
	}
	coefficient := 1.0
	if !maximize {
		coefficient = -1.0
	}
	coefficients := make(map[string]float64, len(vars))
	for _, v := range vars {
		coefficients[v.String()] = coefficient
	}
	q.Objective = &types.Objective{Maximize: maximize, Coefficients: coefficients}
	return nil
}

// subjectVars returns the variables a clause subject stands for:
// literals pass through as their synthetic variable, entity spans
// resolve against the database.
func (c *Compiler) subjectVars(raw string, subject parser.Subject, allowed types.KindSet) ([]types.Var, error) {
	if subject.IsLiteral() {
		return []types.Var{types.SyntheticVar(subject.Literal)}, nil
	}
	entities, err := c.resolveSpan(raw, subject.Entity, allowed)
	if err != nil {
		return nil, err
	}
	vars := make([]types.Var, len(entities))
	for i, e := range entities {
		vars[i] = e.Var()
	}
	return vars, nil
}

func (c *Compiler) resolveSpan(raw string, ref parser.EntityRef, allowed types.KindSet) ([]types.Entity, error) {
	entities, err := c.resolver.Resolve(ref.Span, allowed)
	if err != nil {
		var notFound *resolver.NotFoundError
		if errors.As(err, &notFound) {
			return nil, &CompileError{
				Kind:        ErrorKindResolution,
				Message:     notFound.Error(),
				Query:       raw,
				Offset:      ref.Offset,
				Span:        ref.Span,
				Suggestions: notFound.Suggestions,
				Err:         errors.Wrap(errors.ErrNotFound, ref.Span),
			}
		}
		return nil, err
	}
	return entities, nil
}

// compileRecipesFor lists recipes producing an item, running in a
// crafter, or fueling a generator.
func (c *Compiler) compileRecipesFor(raw string, node *parser.RecipesFor) (*types.InfoQuery, error) {
	entities, err := c.resolveSpan(raw, node.Entity, lookupKinds)
	if err != nil {
		return nil, err
	}

	q := &types.InfoQuery{}
	seen := make(map[string]bool)
	add := func(e types.Entity) {
		v := e.Var().String()
		if !seen[v] {
			seen[v] = true
			q.Add(e)
		}
	}

	for _, e := range entities {
		switch target := e.(type) {
		case *gamedata.Item:
			for _, recipe := range c.db.RecipesForProduct(target.Var()) {
				add(recipe)
			}
		case *gamedata.Crafter:
			for _, recipe := range c.db.Recipes() {
				if recipe.CrafterVar() == target.Var() {
					add(recipe)
				}
			}
		case *gamedata.Generator:
			for _, recipe := range c.db.PowerRecipes() {
				if recipe.GeneratorVar() == target.Var() {
					add(recipe)
				}
			}
		}
	}
	return q, nil
}

// compileRecipesFrom lists recipes consuming an item as an ingredient.
func (c *Compiler) compileRecipesFrom(raw string, node *parser.RecipesFrom) (*types.InfoQuery, error) {
	entities, err := c.resolveSpan(raw, node.Entity, inputKinds)
	if err != nil {
		return nil, err
	}

	q := &types.InfoQuery{}
	seen := make(map[string]bool)
	for _, e := range entities {
		for _, recipe := range c.db.RecipesForIngredient(e.Var()) {
			v := recipe.Var().String()
			if !seen[v] {
				seen[v] = true
				q.Add(recipe)
			}
		}
	}
	return q, nil
}

// compileEntityDetails lists the entities of any kind matching the
// span.
func (c *Compiler) compileEntityDetails(raw string, node *parser.EntityDetails) (*types.InfoQuery, error) {
	entities, err := c.resolveSpan(raw, node.Entity, allKinds)
	if err != nil {
		return nil, err
	}

	q := &types.InfoQuery{}
	for _, e := range entities {
		q.Add(e)
	}
	return q, nil
}
