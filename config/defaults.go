package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Dataset defaults
	v.SetDefault("dataset.path", "ada.yaml")

	// Database defaults (empty path disables the SQLite backend)
	v.SetDefault("database.path", "")

	// Resolver defaults
	v.SetDefault("resolver.suggestion_limit", 5)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}
