package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatisfactoryWiki/ada/gamedata"
)

func mockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLStore(db), mock
}

func TestImport(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").
		WithArgs("iron-ore", "Iron Ore", true, false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO crafters").
		WithArgs("smelter", "Smelter", 4.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO recipes").
		WithArgs("iron-ingot", "Iron Ingot", "smelter", 2.0, false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO recipe_flows").
		WithArgs("iron-ingot", "iron-ore", 1, true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.Import(&gamedata.Dataset{
		Items:    []gamedata.ItemSpec{{Slug: "iron-ore", Name: "Iron Ore", Resource: true}},
		Crafters: []gamedata.BuildingSpec{{Slug: "smelter", Name: "Smelter", PowerMW: 4}},
		Recipes: []gamedata.RecipeSpec{{
			Slug: "iron-ingot", Name: "Iron Ingot", Crafter: "smelter", DurationSec: 2,
			Ingredients: []gamedata.FlowSpec{{Item: "iron-ore", Amount: 1}},
		}},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRollsBackOnError(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO items").
		WithArgs("iron-ore", "Iron Ore", true, false).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Import(&gamedata.Dataset{
		Items: []gamedata.ItemSpec{{Slug: "iron-ore", Name: "Iron Ore", Resource: true}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert item iron-ore")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDataset(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectQuery("SELECT slug, name, resource, liquid FROM items").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "resource", "liquid"}).
			AddRow("iron-ore", "Iron Ore", true, false).
			AddRow("iron-ingot", "Iron Ingot", false, false))
	mock.ExpectQuery("SELECT slug, name, power_mw FROM crafters").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "power_mw"}).
			AddRow("smelter", "Smelter", 4.0))
	mock.ExpectQuery("SELECT slug, name, power_mw FROM generators").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "power_mw"}))
	mock.ExpectQuery("SELECT slug, name, crafter, duration_sec, alternate FROM recipes").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "crafter", "duration_sec", "alternate"}).
			AddRow("iron-ingot", "Iron Ingot", "smelter", 2.0, false))
	mock.ExpectQuery("SELECT recipe, item, amount, ingredient FROM recipe_flows").
		WillReturnRows(sqlmock.NewRows([]string{"recipe", "item", "amount", "ingredient"}).
			AddRow("iron-ingot", "iron-ore", 1, true).
			AddRow("iron-ingot", "iron-ingot", 1, false))
	mock.ExpectQuery("SELECT slug, name, generator, fuel, fuel_amount, power_mw FROM power_recipes").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "generator", "fuel", "fuel_amount", "power_mw"}))

	ds, err := store.LoadDataset()
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, ds.Items, 2)
	assert.True(t, ds.Items[0].Resource)
	require.Len(t, ds.Recipes, 1)
	assert.Equal(t, []gamedata.FlowSpec{{Item: "iron-ore", Amount: 1}}, ds.Recipes[0].Ingredients)
	assert.Equal(t, []gamedata.FlowSpec{{Item: "iron-ingot", Amount: 1}}, ds.Recipes[0].Products)
}

func TestLoadDatasetUnknownFlowRecipe(t *testing.T) {
	store, mock := mockStore(t)

	mock.ExpectQuery("SELECT slug, name, resource, liquid FROM items").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "resource", "liquid"}))
	mock.ExpectQuery("SELECT slug, name, power_mw FROM crafters").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "power_mw"}))
	mock.ExpectQuery("SELECT slug, name, power_mw FROM generators").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "power_mw"}))
	mock.ExpectQuery("SELECT slug, name, crafter, duration_sec, alternate FROM recipes").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "name", "crafter", "duration_sec", "alternate"}))
	mock.ExpectQuery("SELECT recipe, item, amount, ingredient FROM recipe_flows").
		WillReturnRows(sqlmock.NewRows([]string{"recipe", "item", "amount", "ingredient"}).
			AddRow("ghost", "iron-ore", 1, true))

	_, err := store.LoadDataset()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown recipe "ghost"`)
}
