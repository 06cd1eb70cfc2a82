// Package config manages ada configuration via Viper: a TOML config
// file, ADA_* environment variables, and programmatic defaults.
package config

// Config is the root configuration for ada.
type Config struct {
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Database DatabaseConfig `mapstructure:"database"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatasetConfig locates the YAML entity dataset.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

// DatabaseConfig locates the optional SQLite entity database. When a
// path is configured it takes precedence over the YAML dataset.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ResolverConfig tunes entity resolution.
type ResolverConfig struct {
	// SuggestionLimit caps "did you mean" suggestions attached to
	// resolution failures.
	SuggestionLimit int `mapstructure:"suggestion_limit"`
}

// LogConfig controls logger output.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}
