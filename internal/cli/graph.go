package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/Fabrica/internal/builder"
	"github.com/shaiso/Fabrica/internal/buildspec"
	"github.com/shaiso/Fabrica/internal/depgraph"
)

// graphStep — строка порядка разрешения для JSON-вывода.
type graphStep struct {
	Position   int    `json:"position"`
	Action     string `json:"action"` // BUILD или LOOKUP
	Name       string `json:"name"`
	Version    string `json:"version,omitempty"`
	Constraint string `json:"constraint,omitempty"`
}

// NewGraphCmd создаёт команду просмотра порядка разрешения.
//
// Ничего не собирает и в кэш не ходит: показывает, в каком порядке
// пайплайн выдал бы спеки и какие зависимости ушли бы во внешний
// поиск. Остаток в графе после обхода — цикл.
func NewGraphCmd(outputFn func() *Output) *cobra.Command {
	var specPaths []string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the dependency resolution order without building",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			specs, err := buildspec.LoadAll(specPaths)
			if err != nil {
				return err
			}
			if err := buildspec.Validate(specs); err != nil {
				return err
			}

			graph := depgraph.New[buildspec.Spec, buildspec.Declaration](specs)

			if !graph.IsInternallyResolvable() {
				out.Success("Some dependencies require an external lookup")
			}

			var steps []graphStep
			for step := range graph.Steps() {
				gs := graphStep{Position: len(steps) + 1}
				if spec, ok := step.Resolved(); ok {
					gs.Action = "BUILD"
					gs.Name = spec.Name
					gs.Version = spec.Version.String()
				} else {
					dep, _ := step.Unresolved()
					gs.Action = "LOOKUP"
					gs.Name = dep.Name
					gs.Constraint = dep.Constraint.String()
				}
				steps = append(steps, gs)
			}

			headers := []string{"#", "ACTION", "NAME", "VERSION"}
			rows := make([][]string, len(steps))
			for i, gs := range steps {
				version := gs.Version
				if version == "" {
					version = gs.Constraint
				}
				rows[i] = []string{strconv.Itoa(gs.Position), gs.Action, gs.Name, version}
			}
			out.Print(headers, rows, steps)

			if n := graph.Remaining(); n > 0 {
				return fmt.Errorf("%w: %d specs never became ready", builder.ErrCyclicDependency, n)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&specPaths, "spec", nil, "Path to a buildspec file (repeatable)")
	cmd.MarkFlagRequired("spec")

	return cmd
}
