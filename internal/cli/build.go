package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/shaiso/Fabrica/internal/builder"
	"github.com/shaiso/Fabrica/internal/buildspec"
	"github.com/shaiso/Fabrica/internal/cache"
	"github.com/shaiso/Fabrica/internal/telemetry"
)

// Округление длительностей в таблицах.
const timePrecision = time.Millisecond

// NewBuildCmd создаёт команду сборки спеков.
func NewBuildCmd(cacheFn func() (*cache.Cache, error), outputFn func() *Output) *cobra.Command {
	var specPaths []string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build specs in dependency order",
		Long: "Loads one or more buildspec files, resolves dependencies between them,\n" +
			"fetches external dependencies from the artifact cache and builds every\n" +
			"spec strictly after its dependencies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			specs, err := buildspec.LoadAll(specPaths)
			if err != nil {
				return err
			}
			if err := buildspec.Validate(specs); err != nil {
				return err
			}

			c, err := cacheFn()
			if err != nil {
				return err
			}

			metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
			if metricsAddr != "" {
				// Долгие пайплайны можно наблюдать снаружи.
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.Handler())
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						slog.Warn("metrics endpoint failed", "error", err)
					}
				}()
			}

			runner := builder.New(builder.Config{
				Cache:   c,
				Logger:  slog.Default(),
				Metrics: metrics,
			})

			report, err := runner.Run(cmd.Context(), specs)
			if err != nil {
				return err
			}

			headers := []string{"KIND", "NAME", "VERSION", "ARTIFACTS", "DURATION"}
			rows := make([][]string, len(report.Steps))
			for i, step := range report.Steps {
				rows[i] = []string{
					step.Kind,
					step.Name,
					step.Version,
					strings.Join(step.Artifacts, ","),
					step.Duration.Round(timePrecision).String(),
				}
			}

			out.Print(headers, rows, report)
			out.Success(fmt.Sprintf("Run %s: %d steps", report.RunID, len(report.Steps)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&specPaths, "spec", nil, "Path to a buildspec file (repeatable)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address during the run")
	cmd.MarkFlagRequired("spec")

	return cmd
}
