package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shaiso/Fabrica/internal/buildspec"
	"github.com/shaiso/Fabrica/internal/cache"
	"github.com/shaiso/Fabrica/internal/depgraph"
	"github.com/shaiso/Fabrica/internal/telemetry"
)

// Виды шагов в отчёте пайплайна.
const (
	// StepBuilt — спек собран внутри пайплайна.
	StepBuilt = "BUILT"

	// StepFetched — внешняя зависимость взята из кэша.
	StepFetched = "FETCHED"
)

// StepReport — один шаг пайплайна в отчёте.
type StepReport struct {
	// Kind — BUILT или FETCHED.
	Kind string `json:"kind"`

	// Name — имя спека или внешней зависимости.
	Name string `json:"name"`

	// Version — собранная либо найденная в кэше версия.
	Version string `json:"version"`

	// Constraint — ограничение версии (только для FETCHED).
	Constraint string `json:"constraint,omitempty"`

	// Artifacts — имена артефактов шага.
	Artifacts []string `json:"artifacts,omitempty"`

	// Duration — длительность шага.
	Duration time.Duration `json:"duration"`
}

// Report — отчёт об одном прогоне пайплайна.
type Report struct {
	// RunID — идентификатор прогона.
	RunID uuid.UUID `json:"run_id"`

	// Steps — шаги в порядке выполнения.
	Steps []StepReport `json:"steps"`

	// Started и Finished — границы прогона.
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// Config — конфигурация Runner.
type Config struct {
	// Cache — кэш артефактов; обязателен.
	Cache *cache.Cache

	// Registry — реестр executor'ов. По умолчанию NewRegistry().
	Registry *Registry

	// Logger — логгер пайплайна. По умолчанию slog.Default().
	Logger *slog.Logger

	// Metrics — метрики пайплайна. По умолчанию — изолированный
	// реестр (удобно в тестах).
	Metrics *telemetry.Metrics
}

// Runner — синхронный пайплайн сборки поверх depgraph.
//
// Один Runner можно использовать для нескольких прогонов;
// каждый прогон строит собственный граф и выдаёт его ровно один раз.
type Runner struct {
	cache    *cache.Cache
	registry *Registry
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// New создаёт Runner.
func New(cfg Config) *Runner {
	if cfg.Registry == nil {
		cfg.Registry = NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = telemetry.NewMetrics(prometheus.NewRegistry())
	}
	return &Runner{
		cache:    cfg.Cache,
		registry: cfg.Registry,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Run выполняет один прогон: строит граф из specs и выдаёт его
// в порядке зависимостей, собирая спеки и доставая внешние
// зависимости из кэша.
//
// Порядок specs значим: при нескольких кандидатах на зависимость
// граф выбирает первого по порядку входа. Срез нельзя изменять
// до возврата из Run.
func (r *Runner) Run(ctx context.Context, specs []buildspec.Spec) (*Report, error) {
	report := &Report{
		RunID:   uuid.New(),
		Started: time.Now(),
	}
	logger := r.logger.With("run_id", report.RunID)
	logger.Info("starting build run", "specs", len(specs))

	graph := depgraph.New[buildspec.Spec, buildspec.Declaration](specs)

	if err := r.preflight(graph, logger); err != nil {
		return nil, err
	}

	for step := range graph.Steps() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if spec, ok := step.Resolved(); ok {
			if err := r.buildOne(ctx, spec, report, logger); err != nil {
				return nil, err
			}
			continue
		}

		dep, _ := step.Unresolved()
		if err := r.fetchOne(dep, report, logger); err != nil {
			return nil, err
		}
	}

	if n := graph.Remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d specs never became ready", ErrCyclicDependency, n)
	}

	report.Finished = time.Now()
	logger.Info("build run finished",
		"steps", len(report.Steps),
		"duration", report.Finished.Sub(report.Started))
	return report, nil
}

// preflight проверяет, что каждая внешняя зависимость графа
// находится в кэше, до начала каких-либо сборок.
//
// Граф не дедуплицирует незакрытые дескрипторы (вершина на каждое
// ребро), поэтому проверка схлопывает повторы сама.
func (r *Runner) preflight(graph *depgraph.Graph[buildspec.Spec, buildspec.Declaration], logger *slog.Logger) error {
	checked := make(map[string]bool)

	for dep := range graph.UnresolvedDependencies() {
		key := dep.String()
		if checked[key] {
			continue
		}
		checked[key] = true

		_, err := r.cache.Find(dep.Name, dep.Constraint)
		if errors.Is(err, cache.ErrNotCached) {
			r.metrics.CacheMisses.Inc()
			logger.Error("external dependency not in cache", "dependency", key)
			return fmt.Errorf("%w: %s", ErrUnresolvedDependency, key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// buildOne собирает один спек и кладёт его артефакты в кэш.
func (r *Runner) buildOne(ctx context.Context, spec *buildspec.Spec, report *Report, logger *slog.Logger) error {
	executor, err := r.registry.Get(spec.BuildType())
	if err != nil {
		return &BuildError{Spec: spec.Name, Err: err}
	}

	logger.Info("building spec", "spec", spec.String(), "type", spec.BuildType())
	started := time.Now()

	result, err := executor.Execute(ctx, spec)
	elapsed := time.Since(started)
	r.metrics.BuildDuration.Observe(elapsed.Seconds())

	if err != nil {
		r.metrics.BuildFailures.Inc()
		var berr *BuildError
		if errors.As(err, &berr) {
			return err
		}
		return &BuildError{Spec: spec.Name, Err: err}
	}
	r.metrics.BuildsTotal.Inc()

	artifacts := make([]string, 0, len(result.Artifacts))
	if len(result.Artifacts) > 0 {
		entry, err := r.cache.Put(spec.Name, spec.Version, result.Artifacts)
		if err != nil {
			return &BuildError{Spec: spec.Name, Err: err}
		}
		artifacts = entry.Artifacts
	}

	report.Steps = append(report.Steps, StepReport{
		Kind:      StepBuilt,
		Name:      spec.Name,
		Version:   spec.Version.String(),
		Artifacts: artifacts,
		Duration:  elapsed,
	})
	return nil
}

// fetchOne достаёт внешнюю зависимость из кэша.
// Preflight уже подтвердил наличие, но кэш мог измениться между
// шагами — промах здесь остаётся ошибкой.
func (r *Runner) fetchOne(dep buildspec.Declaration, report *Report, logger *slog.Logger) error {
	started := time.Now()

	entry, err := r.cache.Find(dep.Name, dep.Constraint)
	if errors.Is(err, cache.ErrNotCached) {
		r.metrics.CacheMisses.Inc()
		return fmt.Errorf("%w: %s", ErrUnresolvedDependency, dep)
	}
	if err != nil {
		return err
	}
	r.metrics.CacheHits.Inc()

	logger.Info("fetched external dependency",
		"dependency", dep.String(), "version", entry.Version.String())

	report.Steps = append(report.Steps, StepReport{
		Kind:       StepFetched,
		Name:       dep.Name,
		Version:    entry.Version.String(),
		Constraint: dep.Constraint.String(),
		Artifacts:  entry.Artifacts,
		Duration:   time.Since(started),
	})
	return nil
}
