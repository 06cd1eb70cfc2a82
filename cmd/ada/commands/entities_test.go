package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/query/resolver"
	"github.com/SatisfactoryWiki/ada/query/types"
)

func testResolver(t *testing.T) (*resolver.Resolver, gamedata.Database) {
	t.Helper()
	db, err := gamedata.NewStatic(gamedata.SampleDataset())
	require.NoError(t, err)
	return resolver.NewResolver(db, 0), db
}

func TestLookupEntities(t *testing.T) {
	r, _ := testResolver(t)
	cmd, out := captureCommand()

	require.NoError(t, lookupEntities(cmd, r, types.AllKinds(), "iron rod"))

	text := out.String()
	assert.Contains(t, text, "item:iron-rod")
	assert.Contains(t, text, "Iron Rod")
	assert.NotContains(t, text, "item:iron-plate")
}

func TestLookupEntitiesKindRestricted(t *testing.T) {
	r, _ := testResolver(t)
	cmd, out := captureCommand()

	require.NoError(t, lookupEntities(cmd, r, types.Kinds(types.KindRecipe), "screw.*"))

	text := out.String()
	assert.Contains(t, text, "recipe:screw")
	assert.NotContains(t, text, "item:screw")
}

func TestLookupEntitiesNotFound(t *testing.T) {
	r, _ := testResolver(t)
	cmd, _ := captureCommand()

	err := lookupEntities(cmd, r, types.AllKinds(), "iron rof")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `could not find`)
	assert.Contains(t, err.Error(), "Did you mean: Iron Rod")
}

func TestListEntitiesKindFiltered(t *testing.T) {
	_, db := testResolver(t)
	cmd, out := captureCommand()

	require.NoError(t, listEntities(cmd, db, types.Kinds(types.KindCrafter)))

	text := out.String()
	assert.Contains(t, text, "crafter:smelter")
	assert.NotContains(t, text, "item:")
}
