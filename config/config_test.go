package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "ada.yaml", cfg.Dataset.Path)
	assert.Equal(t, "", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Resolver.SuggestionLimit)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ada.toml")
	content := `
[dataset]
path = "custom.yaml"

[resolver]
suggestion_limit = 3

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", cfg.Dataset.Path)
	assert.Equal(t, 3, cfg.Resolver.SuggestionLimit)
	assert.True(t, cfg.Log.JSON)
	// Unset keys keep their defaults
	assert.Equal(t, "", cfg.Database.Path)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadCachesConfig(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
