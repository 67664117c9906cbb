// Command strata reports planning-graph statistics and heuristic values for
// generated air-cargo benchmark problems.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strata/aircargo"
	"github.com/katalvlaran/strata/graphplan"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "strata",
		Version: version,
		Short:   "Leveled planning-graph engine",
		Long: `strata builds leveled planning graphs for STRIPS problems and derives
the level-sum, max-level and set-level goal heuristics from their mutex
relations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(newAirCargoCmd())
	return root
}

func newAirCargoCmd() *cobra.Command {
	var (
		cargos        int
		planes        int
		airports      int
		serialize     bool
		ignoreMutexes bool
		maxLevels     int
	)

	cmd := &cobra.Command{
		Use:   "aircargo",
		Short: "Level an air-cargo problem and print its heuristics",
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, state, err := aircargo.Problem(cargos, planes, airports)
			if err != nil {
				return err
			}
			graph, err := graphplan.New(problem, state,
				graphplan.WithSerialize(serialize),
				graphplan.WithIgnoreMutexes(ignoreMutexes),
			)
			if err != nil {
				return err
			}
			graph.Fill(maxLevels)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fluents:  %d\n", len(problem.Fluents))
			fmt.Fprintf(out, "actions:  %d (incl. no-ops)\n", graph.NumActions())
			fmt.Fprintf(out, "levels:   %d (leveled: %v)\n", graph.Levels(), graph.Leveled())
			for i := 0; i < graph.Levels(); i++ {
				fmt.Fprintf(out, "  L%-3d literals: %d", i, graph.LiteralLayerAt(i).Len())
				if i > 0 {
					fmt.Fprintf(out, "   A%-3d actions: %d", i, graph.ActionLayerAt(i-1).Len())
				}
				fmt.Fprintln(out)
			}

			printHeuristic(out, "level-sum", graph.LevelSum)
			printHeuristic(out, "max-level", graph.MaxLevel)
			printHeuristic(out, "set-level", graph.SetLevel)
			return nil
		},
	}

	cmd.Flags().IntVar(&cargos, "cargos", 2, "number of cargos")
	cmd.Flags().IntVar(&planes, "planes", 2, "number of planes")
	cmd.Flags().IntVar(&airports, "airports", 2, "number of airports")
	cmd.Flags().BoolVar(&serialize, "serialize", true, "serialize non-persistence actions per level")
	cmd.Flags().BoolVar(&ignoreMutexes, "ignore-mutexes", false, "skip dynamic mutex tests")
	cmd.Flags().IntVar(&maxLevels, "max-levels", -1, "cap on expansion steps (negative = until leveled)")
	return cmd
}

func printHeuristic(out io.Writer, name string, h func() (int, error)) {
	v, err := h()
	switch {
	case errors.Is(err, graphplan.ErrNoSetLevel), errors.Is(err, graphplan.ErrGoalUnreachable):
		fmt.Fprintf(out, "%s: no finite estimate (%v)\n", name, err)
	case err != nil:
		fmt.Fprintf(out, "%s: error: %v\n", name, err)
	default:
		fmt.Fprintf(out, "%s: %d\n", name, v)
	}
}
