// Package gamedata defines the read-only entity database the query
// compiler resolves against: items, recipes, power recipes, crafters,
// and generators, each addressable by a canonical "kind:slug" variable.
package gamedata

import (
	"github.com/SatisfactoryWiki/ada/query/types"
)

// Database is the consumed interface of the entity database. All
// lookups are in-memory reads; implementations must be safe for
// concurrent readers.
type Database interface {
	Items() []*Item
	Recipes() []*Recipe
	PowerRecipes() []*PowerRecipe
	Crafters() []*Crafter
	Generators() []*Generator

	// RecipesForProduct returns all recipes producing the item variable.
	RecipesForProduct(v types.Var) []*Recipe
	// RecipesForIngredient returns all recipes consuming the item variable.
	RecipesForIngredient(v types.Var) []*Recipe
}

// Item is a craftable part or an extractable resource.
type Item struct {
	Slug     string
	Name     string
	Resource bool
	Liquid   bool
}

// Var returns the canonical variable. Resources and items carry
// distinct kind prefixes so input clauses can restrict to either.
func (i *Item) Var() types.Var {
	if i.Resource {
		return types.EntityVar(types.KindResource, i.Slug)
	}
	return types.EntityVar(types.KindItem, i.Slug)
}

func (i *Item) DisplayName() string { return i.Name }

func (i *Item) Kind() types.Kind {
	if i.Resource {
		return types.KindResource
	}
	return types.KindItem
}

func (i *Item) IsResource() bool { return i.Resource }
func (i *Item) IsLiquid() bool   { return i.Liquid }

// Flow is one ingredient or product line of a recipe.
type Flow struct {
	Item   *Item
	Amount int
}

// MinuteRate returns the per-minute rate of this flow for a recipe of
// the given duration.
func (f Flow) MinuteRate(durationSec float64) float64 {
	return 60 * float64(f.Amount) / durationSec
}

// Recipe converts ingredients into products inside a crafter.
type Recipe struct {
	Slug        string
	Name        string
	Alternate   bool
	Crafter     *Crafter
	DurationSec float64
	Ingredients []Flow
	Products    []Flow
}

func (r *Recipe) Var() types.Var      { return types.EntityVar(types.KindRecipe, r.Slug) }
func (r *Recipe) DisplayName() string { return r.Name }
func (r *Recipe) Kind() types.Kind    { return types.KindRecipe }

// CrafterVar returns the variable of the building running this recipe.
func (r *Recipe) CrafterVar() types.Var { return r.Crafter.Var() }

// PowerRecipe burns a fuel inside a generator to produce power.
type PowerRecipe struct {
	Slug      string
	Name      string
	Generator *Generator
	Fuel      Flow
	PowerMW   float64
}

func (p *PowerRecipe) Var() types.Var      { return types.EntityVar(types.KindPowerRecipe, p.Slug) }
func (p *PowerRecipe) DisplayName() string { return p.Name }
func (p *PowerRecipe) Kind() types.Kind    { return types.KindPowerRecipe }

// GeneratorVar returns the variable of the building running this
// power recipe.
func (p *PowerRecipe) GeneratorVar() types.Var { return p.Generator.Var() }

// Crafter is a production building.
type Crafter struct {
	Slug    string
	Name    string
	PowerMW float64
}

func (c *Crafter) Var() types.Var      { return types.EntityVar(types.KindCrafter, c.Slug) }
func (c *Crafter) DisplayName() string { return c.Name }
func (c *Crafter) Kind() types.Kind    { return types.KindCrafter }

// Generator is a power-producing building.
type Generator struct {
	Slug    string
	Name    string
	PowerMW float64
}

func (g *Generator) Var() types.Var      { return types.EntityVar(types.KindGenerator, g.Slug) }
func (g *Generator) DisplayName() string { return g.Name }
func (g *Generator) Kind() types.Kind    { return types.KindGenerator }
