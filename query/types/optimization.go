package types

import (
	"fmt"
	"strings"
)

// OptimizationQuery is the compiled form of a production-planning
// command: a single objective plus eq/ge/le constraint maps derived
// from the output, input, include, and exclude sections.
//
// The sign conventions are a contract with the solver and must not be
// normalized: outputs become lower bounds (fixed at N, wildcard at
// zero), fixed inputs become negative lower bounds on the (negated)
// flow variable, wildcard inputs become upper bounds at zero, includes
// become lower bounds at zero, and excludes are pinned to exactly zero.
type OptimizationQuery struct {
	Objective *Objective

	outputs  section[Output]
	inputs   section[Input]
	includes section[Include]
	excludes section[Exclude]
}

// NewOptimizationQuery constructs an empty query with the default
// category layout: item outputs and item inputs start non-strict, and
// the four include categories start strict so that naming any recipe,
// power recipe, crafter, or generator restricts the solver to the named
// set of that kind.
func NewOptimizationQuery() *OptimizationQuery {
	q := &OptimizationQuery{
		outputs:  newSection[Output](),
		inputs:   newSection[Input](),
		includes: newSection[Include](),
		excludes: newSection[Exclude](),
	}
	q.outputs.ensure(KindItem, false)
	q.inputs.ensure(KindItem, false)
	q.includes.ensure(KindCrafter, true)
	q.includes.ensure(KindGenerator, true)
	q.includes.ensure(KindRecipe, true)
	q.includes.ensure(KindPowerRecipe, true)
	return q
}

// AddOutput records a produced target. fixed=false means "any amount".
func (q *OptimizationQuery) AddOutput(v Var, amount int, fixed, strict bool) {
	q.outputs.add(v, Output{Var: v, Amount: amount, Fixed: fixed}, strict)
}

// AddInput records a consumed source. fixed=false means "any amount".
func (q *OptimizationQuery) AddInput(v Var, amount int, fixed, strict bool) {
	q.inputs.add(v, Input{Var: v, Amount: amount, Fixed: fixed}, strict)
}

// MarkOutputStrict escalates the strict flag on v's output category.
// Objective clauses carry "only" without contributing an element, so
// escalation is separate from AddOutput.
func (q *OptimizationQuery) MarkOutputStrict(v Var) {
	q.outputs.markStrict(v.Group())
}

// MarkInputStrict escalates the strict flag on v's input category.
func (q *OptimizationQuery) MarkInputStrict(v Var) {
	q.inputs.markStrict(v.Group())
}

// AddInclude pins a variable as available to the solver.
func (q *OptimizationQuery) AddInclude(v Var) {
	q.includes.add(v, Include{Var: v}, false)
}

// AddExclude pins a variable to zero.
func (q *OptimizationQuery) AddExclude(v Var) {
	q.excludes.add(v, Exclude{Var: v}, false)
}

// EqConstraints maps variables to exact targets: every exclude is
// pinned to zero.
func (q *OptimizationQuery) EqConstraints() map[string]float64 {
	result := make(map[string]float64)
	q.excludes.each(func(v string, _ Exclude) {
		result[v] = 0
	})
	return result
}

// GeConstraints maps variables to lower bounds: outputs (fixed at N,
// wildcard at zero), fixed inputs as negative bounds, and includes at
// zero.
func (q *OptimizationQuery) GeConstraints() map[string]float64 {
	result := make(map[string]float64)
	q.outputs.each(func(v string, o Output) {
		if o.Fixed {
			result[v] = float64(o.Amount)
		} else {
			result[v] = 0
		}
	})
	q.inputs.each(func(v string, in Input) {
		if in.Fixed {
			result[v] = -float64(in.Amount)
		}
	})
	q.includes.each(func(v string, _ Include) {
		result[v] = 0
	})
	return result
}

// LeConstraints maps variables to upper bounds: wildcard inputs capped
// at zero, meaning the solver must not require that input.
func (q *OptimizationQuery) LeConstraints() map[string]float64 {
	result := make(map[string]float64)
	q.inputs.each(func(v string, in Input) {
		if !in.Fixed {
			result[v] = 0
		}
	})
	return result
}

// MaximizeObjective reports the optimization direction.
func (q *OptimizationQuery) MaximizeObjective() bool {
	return q.Objective != nil && q.Objective.Maximize
}

// ObjectiveCoefficients returns the objective's coefficient map.
func (q *OptimizationQuery) ObjectiveCoefficients() map[string]float64 {
	if q.Objective == nil {
		return nil
	}
	return q.Objective.Coefficients
}

// An empty "only" category is not meaningfully strict, so every strict
// predicate requires the category to be non-empty as well.

// StrictOutputs reports whether item outputs are restricted to the
// named set.
func (q *OptimizationQuery) StrictOutputs() bool {
	return strictNonEmpty(q.outputs.category(KindItem))
}

// StrictInputs reports whether item inputs are restricted to the named
// set.
func (q *OptimizationQuery) StrictInputs() bool {
	return strictNonEmpty(q.inputs.category(KindItem))
}

// StrictRecipes reports whether recipe selection is restricted to the
// included recipes.
func (q *OptimizationQuery) StrictRecipes() bool {
	return strictNonEmpty(q.includes.category(KindRecipe))
}

// StrictPowerRecipes reports whether power recipe selection is
// restricted to the included power recipes.
func (q *OptimizationQuery) StrictPowerRecipes() bool {
	return strictNonEmpty(q.includes.category(KindPowerRecipe))
}

// StrictCrafters reports whether crafter selection is restricted to the
// included crafters.
func (q *OptimizationQuery) StrictCrafters() bool {
	return strictNonEmpty(q.includes.category(KindCrafter))
}

// StrictGenerators reports whether generator selection is restricted to
// the included generators.
func (q *OptimizationQuery) StrictGenerators() bool {
	return strictNonEmpty(q.includes.category(KindGenerator))
}

// HasPowerOutput reports whether the query produces the synthetic
// "power" output, either as a target amount or as a maximized
// objective.
func (q *OptimizationQuery) HasPowerOutput() bool {
	if q.outputs.category(Kind("power")) != nil {
		return true
	}
	return q.Objective != nil && q.Objective.Maximize && q.Objective.Coefficients["power"] != 0
}

// QueryVars enumerates every variable referenced by the query.
func (q *OptimizationQuery) QueryVars() []string {
	var vars []string
	if q.Objective != nil {
		vars = append(vars, q.Objective.Vars()...)
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		seen[v] = true
	}
	collect := func(v string) {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	q.outputs.each(func(v string, _ Output) { collect(v) })
	q.inputs.each(func(v string, _ Input) { collect(v) })
	q.includes.each(func(v string, _ Include) { collect(v) })
	q.excludes.each(func(v string, _ Exclude) { collect(v) })
	return vars
}

// String reconstructs a canonical command for echoing back to the user,
// e.g. "produce ? unweighted-resources from 60 item:iron-ore".
func (q *OptimizationQuery) String() string {
	var outputs, inputs, includes, excludes []string

	if q.Objective != nil {
		for _, v := range q.Objective.Vars() {
			if q.Objective.Maximize {
				outputs = append(outputs, "? "+v)
			} else {
				inputs = append(inputs, "? "+v)
			}
		}
	}

	q.outputs.eachCategory(func(c *Category[Output]) {
		c.Each(func(v string, o Output) {
			outputs = append(outputs, formatAmountClause(c.Strict, o.Amount, o.Fixed, v))
		})
	})
	q.inputs.eachCategory(func(c *Category[Input]) {
		c.Each(func(v string, in Input) {
			inputs = append(inputs, formatAmountClause(c.Strict, in.Amount, in.Fixed, v))
		})
	})
	q.includes.each(func(v string, _ Include) {
		includes = append(includes, v)
	})
	q.excludes.each(func(v string, _ Exclude) {
		excludes = append(excludes, v)
	})

	parts := []string{"produce " + strings.Join(outputs, " and ")}
	if len(inputs) > 0 {
		parts = append(parts, "from "+strings.Join(inputs, " and "))
	}
	if len(includes) > 0 {
		parts = append(parts, "using "+strings.Join(includes, " and "))
	}
	if len(excludes) > 0 {
		parts = append(parts, "without "+strings.Join(excludes, " or "))
	}
	return strings.Join(parts, " ")
}

func formatAmountClause(strict bool, amount int, fixed bool, v string) string {
	var b strings.Builder
	if strict {
		b.WriteString("only ")
	}
	if fixed {
		fmt.Fprintf(&b, "%d ", amount)
	}
	b.WriteString(v)
	return b.String()
}
