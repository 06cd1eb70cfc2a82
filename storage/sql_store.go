// Package storage persists game datasets in SQLite. The store is a
// write-once import plus a bulk load: queries never hit the database
// at resolution time, they run against the in-memory gamedata.Static
// built from LoadDatabase.
package storage

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/logger"
)

// Query constants
const (
	ItemInsertQuery = `
		INSERT INTO items (slug, name, resource, liquid)
		VALUES (?, ?, ?, ?)`

	CrafterInsertQuery = `
		INSERT INTO crafters (slug, name, power_mw)
		VALUES (?, ?, ?)`

	GeneratorInsertQuery = `
		INSERT INTO generators (slug, name, power_mw)
		VALUES (?, ?, ?)`

	RecipeInsertQuery = `
		INSERT INTO recipes (slug, name, crafter, duration_sec, alternate)
		VALUES (?, ?, ?, ?, ?)`

	RecipeFlowInsertQuery = `
		INSERT INTO recipe_flows (recipe, item, amount, ingredient)
		VALUES (?, ?, ?, ?)`

	PowerRecipeInsertQuery = `
		INSERT INTO power_recipes (slug, name, generator, fuel, fuel_amount, power_mw)
		VALUES (?, ?, ?, ?, ?, ?)`

	ItemSelectQuery = `
		SELECT slug, name, resource, liquid FROM items ORDER BY slug`

	CrafterSelectQuery = `
		SELECT slug, name, power_mw FROM crafters ORDER BY slug`

	GeneratorSelectQuery = `
		SELECT slug, name, power_mw FROM generators ORDER BY slug`

	RecipeSelectQuery = `
		SELECT slug, name, crafter, duration_sec, alternate FROM recipes ORDER BY slug`

	RecipeFlowSelectQuery = `
		SELECT recipe, item, amount, ingredient FROM recipe_flows ORDER BY rowid`

	PowerRecipeSelectQuery = `
		SELECT slug, name, generator, fuel, fuel_amount, power_mw FROM power_recipes ORDER BY slug`
)

const schema = `
	CREATE TABLE IF NOT EXISTS items (
		slug     TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		resource INTEGER NOT NULL DEFAULT 0,
		liquid   INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS crafters (
		slug     TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		power_mw REAL NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS generators (
		slug     TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		power_mw REAL NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS recipes (
		slug         TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		crafter      TEXT NOT NULL REFERENCES crafters(slug),
		duration_sec REAL NOT NULL,
		alternate    INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS recipe_flows (
		recipe     TEXT NOT NULL REFERENCES recipes(slug),
		item       TEXT NOT NULL REFERENCES items(slug),
		amount     INTEGER NOT NULL,
		ingredient INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS power_recipes (
		slug        TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		generator   TEXT NOT NULL REFERENCES generators(slug),
		fuel        TEXT NOT NULL REFERENCES items(slug),
		fuel_amount INTEGER NOT NULL,
		power_mw    REAL NOT NULL
	);`

// SQLStore reads and writes datasets in a SQLite database.
type SQLStore struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewSQLStore wraps an open database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		db:  db,
		log: logger.Logger.With(logger.FieldComponent, "storage"),
	}
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists.
func Open(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}
	store := NewSQLStore(db)
	if err := store.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Init creates the schema if it does not exist yet.
func (s *SQLStore) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to create schema")
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Import writes a dataset into the database in one transaction. The
// target tables must be empty; Import does not merge.
func (s *SQLStore) Import(ds *gamedata.Dataset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin import transaction")
	}
	defer tx.Rollback()

	for _, item := range ds.Items {
		if _, err := tx.Exec(ItemInsertQuery, item.Slug, item.Name, item.Resource, item.Liquid); err != nil {
			return errors.Wrapf(err, "failed to insert item %s", item.Slug)
		}
	}
	for _, crafter := range ds.Crafters {
		if _, err := tx.Exec(CrafterInsertQuery, crafter.Slug, crafter.Name, crafter.PowerMW); err != nil {
			return errors.Wrapf(err, "failed to insert crafter %s", crafter.Slug)
		}
	}
	for _, generator := range ds.Generators {
		if _, err := tx.Exec(GeneratorInsertQuery, generator.Slug, generator.Name, generator.PowerMW); err != nil {
			return errors.Wrapf(err, "failed to insert generator %s", generator.Slug)
		}
	}
	for _, recipe := range ds.Recipes {
		if _, err := tx.Exec(RecipeInsertQuery,
			recipe.Slug, recipe.Name, recipe.Crafter, recipe.DurationSec, recipe.Alternate); err != nil {
			return errors.Wrapf(err, "failed to insert recipe %s", recipe.Slug)
		}
		for _, f := range recipe.Ingredients {
			if _, err := tx.Exec(RecipeFlowInsertQuery, recipe.Slug, f.Item, f.Amount, true); err != nil {
				return errors.Wrapf(err, "failed to insert ingredient of recipe %s", recipe.Slug)
			}
		}
		for _, f := range recipe.Products {
			if _, err := tx.Exec(RecipeFlowInsertQuery, recipe.Slug, f.Item, f.Amount, false); err != nil {
				return errors.Wrapf(err, "failed to insert product of recipe %s", recipe.Slug)
			}
		}
	}
	for _, pr := range ds.PowerRecipes {
		if _, err := tx.Exec(PowerRecipeInsertQuery,
			pr.Slug, pr.Name, pr.Generator, pr.Fuel, pr.FuelAmount, pr.PowerMW); err != nil {
			return errors.Wrapf(err, "failed to insert power recipe %s", pr.Slug)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit import transaction")
	}
	s.log.Infow("imported dataset",
		logger.FieldCount, len(ds.Items)+len(ds.Crafters)+len(ds.Generators)+len(ds.Recipes)+len(ds.PowerRecipes),
	)
	return nil
}

// LoadDataset reads the whole database back into its declarative form.
func (s *SQLStore) LoadDataset() (*gamedata.Dataset, error) {
	ds := &gamedata.Dataset{}

	rows, err := s.db.Query(ItemSelectQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}
	defer rows.Close()
	for rows.Next() {
		var item gamedata.ItemSpec
		if err := rows.Scan(&item.Slug, &item.Name, &item.Resource, &item.Liquid); err != nil {
			return nil, errors.Wrap(err, "failed to scan item")
		}
		ds.Items = append(ds.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate items")
	}

	if ds.Crafters, err = s.loadBuildings(CrafterSelectQuery); err != nil {
		return nil, err
	}
	if ds.Generators, err = s.loadBuildings(GeneratorSelectQuery); err != nil {
		return nil, err
	}
	if ds.Recipes, err = s.loadRecipes(); err != nil {
		return nil, err
	}

	prRows, err := s.db.Query(PowerRecipeSelectQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load power recipes")
	}
	defer prRows.Close()
	for prRows.Next() {
		var pr gamedata.PowerRecipeSpec
		if err := prRows.Scan(&pr.Slug, &pr.Name, &pr.Generator, &pr.Fuel, &pr.FuelAmount, &pr.PowerMW); err != nil {
			return nil, errors.Wrap(err, "failed to scan power recipe")
		}
		ds.PowerRecipes = append(ds.PowerRecipes, pr)
	}
	if err := prRows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate power recipes")
	}
	return ds, nil
}

// LoadDatabase reads the stored dataset and builds the in-memory
// database all queries resolve against.
func (s *SQLStore) LoadDatabase() (*gamedata.Static, error) {
	ds, err := s.LoadDataset()
	if err != nil {
		return nil, err
	}
	return gamedata.NewStatic(ds)
}

func (s *SQLStore) loadBuildings(query string) ([]gamedata.BuildingSpec, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load buildings")
	}
	defer rows.Close()

	var specs []gamedata.BuildingSpec
	for rows.Next() {
		var spec gamedata.BuildingSpec
		if err := rows.Scan(&spec.Slug, &spec.Name, &spec.PowerMW); err != nil {
			return nil, errors.Wrap(err, "failed to scan building")
		}
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

func (s *SQLStore) loadRecipes() ([]gamedata.RecipeSpec, error) {
	rows, err := s.db.Query(RecipeSelectQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipes")
	}
	defer rows.Close()

	var specs []gamedata.RecipeSpec
	index := make(map[string]int)
	for rows.Next() {
		var spec gamedata.RecipeSpec
		if err := rows.Scan(&spec.Slug, &spec.Name, &spec.Crafter, &spec.DurationSec, &spec.Alternate); err != nil {
			return nil, errors.Wrap(err, "failed to scan recipe")
		}
		index[spec.Slug] = len(specs)
		specs = append(specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate recipes")
	}

	flowRows, err := s.db.Query(RecipeFlowSelectQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipe flows")
	}
	defer flowRows.Close()
	for flowRows.Next() {
		var (
			recipe     string
			flow       gamedata.FlowSpec
			ingredient bool
		)
		if err := flowRows.Scan(&recipe, &flow.Item, &flow.Amount, &ingredient); err != nil {
			return nil, errors.Wrap(err, "failed to scan recipe flow")
		}
		i, ok := index[recipe]
		if !ok {
			return nil, errors.Newf("flow references unknown recipe %q", recipe)
		}
		if ingredient {
			specs[i].Ingredients = append(specs[i].Ingredients, flow)
		} else {
			specs[i].Products = append(specs[i].Products, flow)
		}
	}
	return specs, flowRows.Err()
}
