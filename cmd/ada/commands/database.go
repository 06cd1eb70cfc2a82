package commands

import (
	"github.com/SatisfactoryWiki/ada/config"
	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/query/compiler"
	"github.com/SatisfactoryWiki/ada/query/resolver"
	"github.com/SatisfactoryWiki/ada/storage"
)

// openDatabase loads the entity database: the configured SQLite
// database when one is set, otherwise the YAML dataset. Either way the
// result is fully in memory, so there is nothing to keep open.
func openDatabase(cfg *config.Config) (gamedata.Database, error) {
	if cfg.Database.Path != "" {
		store, err := storage.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadDatabase()
	}
	if cfg.Dataset.Path == "" {
		return nil, errors.New("no dataset or database configured")
	}
	return gamedata.LoadStatic(cfg.Dataset.Path)
}

// newCompiler wires a compiler over the configured database.
func newCompiler(cfg *config.Config) (*compiler.Compiler, gamedata.Database, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	r := resolver.NewResolver(db, cfg.Resolver.SuggestionLimit)
	return compiler.New(db, r), db, nil
}
