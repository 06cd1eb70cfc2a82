package gamedata

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SatisfactoryWiki/ada/errors"
)

// Dataset is the declarative, serializable form of a game database.
// Slugs are already canonical; deriving slugs from raw game docs is a
// concern of whatever produced the dataset, not of this package.
type Dataset struct {
	Items        []ItemSpec        `yaml:"items"`
	Crafters     []BuildingSpec    `yaml:"crafters"`
	Generators   []BuildingSpec    `yaml:"generators"`
	Recipes      []RecipeSpec      `yaml:"recipes"`
	PowerRecipes []PowerRecipeSpec `yaml:"power_recipes"`
}

// ItemSpec declares one item or resource.
type ItemSpec struct {
	Slug     string `yaml:"slug"`
	Name     string `yaml:"name"`
	Resource bool   `yaml:"resource,omitempty"`
	Liquid   bool   `yaml:"liquid,omitempty"`
}

// BuildingSpec declares a crafter or generator.
type BuildingSpec struct {
	Slug    string  `yaml:"slug"`
	Name    string  `yaml:"name"`
	PowerMW float64 `yaml:"power_mw,omitempty"`
}

// FlowSpec declares one ingredient or product line by item slug.
type FlowSpec struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// RecipeSpec declares one recipe by slug references.
type RecipeSpec struct {
	Slug        string     `yaml:"slug"`
	Name        string     `yaml:"name"`
	Crafter     string     `yaml:"crafter"`
	DurationSec float64    `yaml:"duration_sec"`
	Alternate   bool       `yaml:"alternate,omitempty"`
	Ingredients []FlowSpec `yaml:"ingredients"`
	Products    []FlowSpec `yaml:"products"`
}

// PowerRecipeSpec declares one generator fuel recipe.
type PowerRecipeSpec struct {
	Slug       string  `yaml:"slug"`
	Name       string  `yaml:"name"`
	Generator  string  `yaml:"generator"`
	Fuel       string  `yaml:"fuel"`
	FuelAmount int     `yaml:"fuel_amount"`
	PowerMW    float64 `yaml:"power_mw"`
}

// LoadDataset reads a YAML dataset from disk.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset %s", path)
	}
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset %s", path)
	}
	return &ds, nil
}

// LoadStatic reads a YAML dataset and builds the in-memory database.
func LoadStatic(path string) (*Static, error) {
	ds, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	db, err := NewStatic(ds)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dataset %s", path)
	}
	return db, nil
}
