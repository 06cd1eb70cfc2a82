package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SatisfactoryWiki/ada/config"
	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/query/resolver"
	"github.com/SatisfactoryWiki/ada/query/types"
)

var entitiesKind string

// EntitiesCmd represents the entities command
var EntitiesCmd = &cobra.Command{
	Use:   "entities [span]",
	Short: "List or look up entities",
	Long: `List the entities in the configured database with their canonical
variables, or look up the ones matching an entity expression.

Examples:
  ada entities                  # Everything
  ada entities --kind item      # Items only
  ada entities iron rod         # One entity by name
  ada entities "iron.*"         # Entities matching a pattern`,
	RunE: runEntitiesCommand,
}

func init() {
	EntitiesCmd.Flags().StringVarP(&entitiesKind, "kind", "k", "",
		"Restrict to one kind (item, resource, recipe, power-recipe, crafter, generator)")
}

func runEntitiesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	allowed := types.AllKinds()
	if entitiesKind != "" {
		kind := types.Kind(entitiesKind)
		if !kind.Valid() {
			return errors.Newf("unknown kind %q", entitiesKind)
		}
		allowed = types.Kinds(kind)
	}

	if len(args) > 0 {
		r := resolver.NewResolver(db, cfg.Resolver.SuggestionLimit)
		return lookupEntities(cmd, r, allowed, strings.Join(args, " "))
	}
	return listEntities(cmd, db, allowed)
}

// lookupEntities resolves a span the way query compilation would and
// prints the matches.
func lookupEntities(cmd *cobra.Command, r *resolver.Resolver, allowed types.KindSet, span string) error {
	entities, err := r.Resolve(span, allowed)
	if err != nil {
		var notFound *resolver.NotFoundError
		if errors.As(err, &notFound) && len(notFound.Suggestions) > 0 {
			return errors.Newf("%s. Did you mean: %s?",
				notFound.Error(), strings.Join(notFound.Suggestions, ", "))
		}
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entities {
		fmt.Fprintf(out, "%-32s %s\n", e.Var().String(), e.DisplayName())
	}
	return nil
}

// listEntities prints every entity of the allowed kinds.
func listEntities(cmd *cobra.Command, db gamedata.Database, allowed types.KindSet) error {
	out := cmd.OutOrStdout()
	printEntity := func(e types.Entity) {
		if !allowed.Has(e.Kind()) {
			return
		}
		fmt.Fprintf(out, "%-32s %s\n", e.Var().String(), e.DisplayName())
	}

	for _, item := range db.Items() {
		printEntity(item)
	}
	for _, recipe := range db.Recipes() {
		printEntity(recipe)
	}
	for _, pr := range db.PowerRecipes() {
		printEntity(pr)
	}
	for _, crafter := range db.Crafters() {
		printEntity(crafter)
	}
	for _, generator := range db.Generators() {
		printEntity(generator)
	}
	return nil
}
