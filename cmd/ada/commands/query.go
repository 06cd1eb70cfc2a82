package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SatisfactoryWiki/ada/config"
	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/query/compiler"
	"github.com/SatisfactoryWiki/ada/query/types"
)

var queryJSON bool

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query COMMAND...",
	Short: "Compile a natural language factory command",
	Long: `Compile a natural language factory command into a structured query.

Production-planning commands ("produce ...") compile to an optimization
query: an objective plus eq/ge/le constraint maps over entity
variables. Lookup commands ("recipes for ...", "iron rod") compile to
an ordered entity list.

Examples:
  ada query produce 60 iron plates
  ada query produce ? iron rods from iron ore using only smelters
  ada query recipes for screws
  ada query iron rod`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQueryCommand,
}

func init() {
	QueryCmd.Flags().BoolVarP(&queryJSON, "json", "j", false, "Output compiled query as JSON")
}

func runQueryCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c, _, err := newCompiler(cfg)
	if err != nil {
		return err
	}

	raw := strings.Join(args, " ")
	query, err := c.Compile(raw)
	if err != nil {
		var compileErr *compiler.CompileError
		if errors.As(err, &compileErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), compileErr.FormatError(compiler.ErrorContextTerminal))
			return errors.Wrap(errors.ErrInvalidQuery, string(compileErr.Kind))
		}
		return err
	}

	switch q := query.(type) {
	case *types.OptimizationQuery:
		return printOptimization(cmd, q)
	case *types.InfoQuery:
		return printInfo(cmd, q)
	default:
		return errors.Newf("unhandled query type %T", query)
	}
}

// optimizationResult is the JSON shape of a compiled optimization
// query.
type optimizationResult struct {
	Query     string             `json:"query"`
	Maximize  bool               `json:"maximize"`
	Objective map[string]float64 `json:"objective"`
	Eq        map[string]float64 `json:"eq"`
	Ge        map[string]float64 `json:"ge"`
	Le        map[string]float64 `json:"le"`
	Strict    map[string]bool    `json:"strict"`
}

func printOptimization(cmd *cobra.Command, q *types.OptimizationQuery) error {
	result := optimizationResult{
		Query:     q.String(),
		Maximize:  q.MaximizeObjective(),
		Objective: q.ObjectiveCoefficients(),
		Eq:        q.EqConstraints(),
		Ge:        q.GeConstraints(),
		Le:        q.LeConstraints(),
		Strict: map[string]bool{
			"outputs":       q.StrictOutputs(),
			"inputs":        q.StrictInputs(),
			"recipes":       q.StrictRecipes(),
			"power_recipes": q.StrictPowerRecipes(),
			"crafters":      q.StrictCrafters(),
			"generators":    q.StrictGenerators(),
		},
	}
	if queryJSON {
		return printJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Query)
	direction := "minimize"
	if result.Maximize {
		direction = "maximize"
	}
	fmt.Fprintf(out, "\nobjective (%s):\n", direction)
	printConstraints(out, result.Objective)
	for _, section := range []struct {
		name        string
		constraints map[string]float64
	}{
		{"eq", result.Eq},
		{"ge", result.Ge},
		{"le", result.Le},
	} {
		if len(section.constraints) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s:\n", section.name)
		printConstraints(out, section.constraints)
	}
	var strict []string
	for _, name := range []string{"outputs", "inputs", "recipes", "power_recipes", "crafters", "generators"} {
		if result.Strict[name] {
			strict = append(strict, name)
		}
	}
	if len(strict) > 0 {
		fmt.Fprintf(out, "\nstrict: %s\n", strings.Join(strict, ", "))
	}
	return nil
}

func printConstraints(out io.Writer, constraints map[string]float64) {
	keys := make([]string, 0, len(constraints))
	for k := range constraints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s = %g\n", k, constraints[k])
	}
}

// infoResult is the JSON shape of a compiled lookup query.
type infoResult struct {
	Count    int          `json:"count"`
	Entities []infoEntity `json:"entities"`
}

type infoEntity struct {
	Var  string `json:"var"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func printInfo(cmd *cobra.Command, q *types.InfoQuery) error {
	if queryJSON {
		result := infoResult{Count: q.Len()}
		for _, e := range q.Entities {
			result.Entities = append(result.Entities, infoEntity{
				Var:  e.Var().String(),
				Name: e.DisplayName(),
				Kind: string(e.Kind()),
			})
		}
		return printJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	if q.Len() == 0 {
		fmt.Fprintln(out, "no results")
		return nil
	}
	for _, e := range q.Entities {
		fmt.Fprintf(out, "%-32s %s\n", e.Var().String(), e.DisplayName())
		describeEntity(out, e)
	}
	return nil
}

// describeEntity prints recipe details beneath the entity line.
func describeEntity(out io.Writer, e types.Entity) {
	switch entity := e.(type) {
	case *gamedata.Recipe:
		for _, f := range entity.Ingredients {
			fmt.Fprintf(out, "    in:  %g/min %s\n", f.MinuteRate(entity.DurationSec), f.Item.Name)
		}
		for _, f := range entity.Products {
			fmt.Fprintf(out, "    out: %g/min %s\n", f.MinuteRate(entity.DurationSec), f.Item.Name)
		}
		fmt.Fprintf(out, "    in a %s\n", entity.Crafter.Name)
	case *gamedata.PowerRecipe:
		fmt.Fprintf(out, "    burns %d %s in a %s for %g MW\n",
			entity.Fuel.Amount, entity.Fuel.Item.Name, entity.Generator.Name, entity.PowerMW)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal result")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
