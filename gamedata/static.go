package gamedata

import (
	"sort"

	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/query/types"
)

// Static is an in-memory Database built once from a Dataset. Product
// and ingredient indexes are constructed at build time; every accessor
// is a read of immutable state, so a Static is safe for concurrent use.
type Static struct {
	items        []*Item
	recipes      []*Recipe
	powerRecipes []*PowerRecipe
	crafters     []*Crafter
	generators   []*Generator

	byProduct    map[string][]*Recipe
	byIngredient map[string][]*Recipe
}

// NewStatic builds a Static database from a dataset, resolving slug
// references and enforcing canonical variable uniqueness.
func NewStatic(ds *Dataset) (*Static, error) {
	s := &Static{
		byProduct:    make(map[string][]*Recipe),
		byIngredient: make(map[string][]*Recipe),
	}

	seen := make(map[string]bool)
	register := func(v types.Var) error {
		key := v.String()
		if seen[key] {
			return errors.Wrapf(errors.ErrInvalidDataset, "duplicate canonical variable %q", key)
		}
		seen[key] = true
		return nil
	}

	itemsBySlug := make(map[string]*Item)
	for _, spec := range ds.Items {
		item := &Item{Slug: spec.Slug, Name: spec.Name, Resource: spec.Resource, Liquid: spec.Liquid}
		if err := register(item.Var()); err != nil {
			return nil, err
		}
		itemsBySlug[spec.Slug] = item
		s.items = append(s.items, item)
	}

	craftersBySlug := make(map[string]*Crafter)
	for _, spec := range ds.Crafters {
		crafter := &Crafter{Slug: spec.Slug, Name: spec.Name, PowerMW: spec.PowerMW}
		if err := register(crafter.Var()); err != nil {
			return nil, err
		}
		craftersBySlug[spec.Slug] = crafter
		s.crafters = append(s.crafters, crafter)
	}

	generatorsBySlug := make(map[string]*Generator)
	for _, spec := range ds.Generators {
		generator := &Generator{Slug: spec.Slug, Name: spec.Name, PowerMW: spec.PowerMW}
		if err := register(generator.Var()); err != nil {
			return nil, err
		}
		generatorsBySlug[spec.Slug] = generator
		s.generators = append(s.generators, generator)
	}

	flows := func(specs []FlowSpec, recipe string) ([]Flow, error) {
		out := make([]Flow, 0, len(specs))
		for _, fs := range specs {
			item, ok := itemsBySlug[fs.Item]
			if !ok {
				return nil, errors.Wrapf(errors.ErrInvalidDataset, "recipe %q references unknown item %q", recipe, fs.Item)
			}
			out = append(out, Flow{Item: item, Amount: fs.Amount})
		}
		return out, nil
	}

	for _, spec := range ds.Recipes {
		crafter, ok := craftersBySlug[spec.Crafter]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidDataset, "recipe %q references unknown crafter %q", spec.Slug, spec.Crafter)
		}
		ingredients, err := flows(spec.Ingredients, spec.Slug)
		if err != nil {
			return nil, err
		}
		products, err := flows(spec.Products, spec.Slug)
		if err != nil {
			return nil, err
		}
		recipe := &Recipe{
			Slug:        spec.Slug,
			Name:        spec.Name,
			Alternate:   spec.Alternate,
			Crafter:     crafter,
			DurationSec: spec.DurationSec,
			Ingredients: ingredients,
			Products:    products,
		}
		if err := register(recipe.Var()); err != nil {
			return nil, err
		}
		s.recipes = append(s.recipes, recipe)
		for _, f := range products {
			key := f.Item.Var().String()
			s.byProduct[key] = append(s.byProduct[key], recipe)
		}
		for _, f := range ingredients {
			key := f.Item.Var().String()
			s.byIngredient[key] = append(s.byIngredient[key], recipe)
		}
	}

	for _, spec := range ds.PowerRecipes {
		generator, ok := generatorsBySlug[spec.Generator]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidDataset, "power recipe %q references unknown generator %q", spec.Slug, spec.Generator)
		}
		fuel, ok := itemsBySlug[spec.Fuel]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidDataset, "power recipe %q references unknown fuel item %q", spec.Slug, spec.Fuel)
		}
		pr := &PowerRecipe{
			Slug:      spec.Slug,
			Name:      spec.Name,
			Generator: generator,
			Fuel:      Flow{Item: fuel, Amount: spec.FuelAmount},
			PowerMW:   spec.PowerMW,
		}
		if err := register(pr.Var()); err != nil {
			return nil, err
		}
		s.powerRecipes = append(s.powerRecipes, pr)
	}

	s.sortAll()
	return s, nil
}

// sortAll orders every entity list by canonical variable so enumeration
// order, and therefore resolver and info-query output, is deterministic.
func (s *Static) sortAll() {
	sort.Slice(s.items, func(i, j int) bool { return s.items[i].Var().String() < s.items[j].Var().String() })
	sort.Slice(s.recipes, func(i, j int) bool { return s.recipes[i].Slug < s.recipes[j].Slug })
	sort.Slice(s.powerRecipes, func(i, j int) bool { return s.powerRecipes[i].Slug < s.powerRecipes[j].Slug })
	sort.Slice(s.crafters, func(i, j int) bool { return s.crafters[i].Slug < s.crafters[j].Slug })
	sort.Slice(s.generators, func(i, j int) bool { return s.generators[i].Slug < s.generators[j].Slug })
	for _, recipes := range s.byProduct {
		sort.Slice(recipes, func(i, j int) bool { return recipes[i].Slug < recipes[j].Slug })
	}
	for _, recipes := range s.byIngredient {
		sort.Slice(recipes, func(i, j int) bool { return recipes[i].Slug < recipes[j].Slug })
	}
}

func (s *Static) Items() []*Item               { return s.items }
func (s *Static) Recipes() []*Recipe           { return s.recipes }
func (s *Static) PowerRecipes() []*PowerRecipe { return s.powerRecipes }
func (s *Static) Crafters() []*Crafter         { return s.crafters }
func (s *Static) Generators() []*Generator     { return s.generators }

func (s *Static) RecipesForProduct(v types.Var) []*Recipe {
	return s.byProduct[v.String()]
}

func (s *Static) RecipesForIngredient(v types.Var) []*Recipe {
	return s.byIngredient[v.String()]
}
