package gamedata

// SampleDataset provides a small but representative slice of the game
// data for tests and demos: the iron chain up to screws, an alternate
// screw recipe, liquids, and a biomass power chain.
func SampleDataset() *Dataset {
	return &Dataset{
		Items: []ItemSpec{
			{Slug: "iron-ore", Name: "Iron Ore", Resource: true},
			{Slug: "copper-ore", Name: "Copper Ore", Resource: true},
			{Slug: "water", Name: "Water", Resource: true, Liquid: true},
			{Slug: "crude-oil", Name: "Crude Oil", Resource: true, Liquid: true},
			{Slug: "iron-ingot", Name: "Iron Ingot"},
			{Slug: "iron-rod", Name: "Iron Rod"},
			{Slug: "iron-plate", Name: "Iron Plate"},
			{Slug: "screw", Name: "Screw"},
			{Slug: "reinforced-iron-plate", Name: "Reinforced Iron Plate"},
			{Slug: "biomass", Name: "Biomass"},
			{Slug: "leaves", Name: "Leaves", Resource: true},
		},
		Crafters: []BuildingSpec{
			{Slug: "smelter", Name: "Smelter", PowerMW: 4},
			{Slug: "constructor", Name: "Constructor", PowerMW: 4},
			{Slug: "assembler", Name: "Assembler", PowerMW: 15},
		},
		Generators: []BuildingSpec{
			{Slug: "biomass-burner", Name: "Biomass Burner", PowerMW: 30},
		},
		Recipes: []RecipeSpec{
			{
				Slug: "iron-ingot", Name: "Iron Ingot", Crafter: "smelter", DurationSec: 2,
				Ingredients: []FlowSpec{{Item: "iron-ore", Amount: 1}},
				Products:    []FlowSpec{{Item: "iron-ingot", Amount: 1}},
			},
			{
				Slug: "iron-rod", Name: "Iron Rod", Crafter: "constructor", DurationSec: 4,
				Ingredients: []FlowSpec{{Item: "iron-ingot", Amount: 1}},
				Products:    []FlowSpec{{Item: "iron-rod", Amount: 1}},
			},
			{
				Slug: "iron-plate", Name: "Iron Plate", Crafter: "constructor", DurationSec: 6,
				Ingredients: []FlowSpec{{Item: "iron-ingot", Amount: 3}},
				Products:    []FlowSpec{{Item: "iron-plate", Amount: 2}},
			},
			{
				Slug: "screw", Name: "Screw", Crafter: "constructor", DurationSec: 6,
				Ingredients: []FlowSpec{{Item: "iron-rod", Amount: 1}},
				Products:    []FlowSpec{{Item: "screw", Amount: 4}},
			},
			{
				Slug: "cast-screw", Name: "Alternate: Cast Screw", Crafter: "constructor",
				DurationSec: 24, Alternate: true,
				Ingredients: []FlowSpec{{Item: "iron-ingot", Amount: 5}},
				Products:    []FlowSpec{{Item: "screw", Amount: 20}},
			},
			{
				Slug: "reinforced-iron-plate", Name: "Reinforced Iron Plate", Crafter: "assembler",
				DurationSec: 12,
				Ingredients: []FlowSpec{{Item: "iron-plate", Amount: 6}, {Item: "screw", Amount: 12}},
				Products:    []FlowSpec{{Item: "reinforced-iron-plate", Amount: 1}},
			},
			{
				Slug: "biomass-leaves", Name: "Biomass (Leaves)", Crafter: "constructor", DurationSec: 5,
				Ingredients: []FlowSpec{{Item: "leaves", Amount: 10}},
				Products:    []FlowSpec{{Item: "biomass", Amount: 5}},
			},
		},
		PowerRecipes: []PowerRecipeSpec{
			{
				Slug: "biomass", Name: "Biomass", Generator: "biomass-burner",
				Fuel: "biomass", FuelAmount: 4, PowerMW: 30,
			},
		},
	}
}
