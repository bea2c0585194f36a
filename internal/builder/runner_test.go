package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaiso/Fabrica/internal/buildspec"
	"github.com/shaiso/Fabrica/internal/cache"
	"github.com/shaiso/Fabrica/internal/semver"
)

// fakeExecutor запоминает порядок сборок и умеет падать на заданных спеках.
type fakeExecutor struct {
	built []string
	fail  map[string]bool
}

func (f *fakeExecutor) Execute(_ context.Context, spec *buildspec.Spec) (*Result, error) {
	if f.fail[spec.Name] {
		return nil, errors.New("boom")
	}
	f.built = append(f.built, spec.Name)
	return &Result{}, nil
}

func newTestRunner(t *testing.T) (*Runner, *fakeExecutor, *cache.Cache) {
	t.Helper()

	c, err := cache.New(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("create cache: %v", err)
	}

	fake := &fakeExecutor{fail: make(map[string]bool)}
	registry := NewRegistry()
	registry.Register("fake", fake)

	runner := New(Config{Cache: c, Registry: registry})
	return runner, fake, c
}

func fakeSpec(name, version string, deps ...buildspec.Declaration) buildspec.Spec {
	return buildspec.Spec{
		Name:     name,
		Version:  semver.MustParseVersion(version),
		Requires: deps,
		Build:    buildspec.BuildConfig{Type: "fake"},
	}
}

func dep(name, constraint string) buildspec.Declaration {
	return buildspec.Declaration{
		Name:       name,
		Constraint: semver.MustParseConstraint(constraint),
	}
}

func TestRun_OrderRespectsDependencies(t *testing.T) {
	runner, fake, _ := newTestRunner(t)

	// Вход нарочно перемешан: порядок сборки определяют зависимости.
	specs := []buildspec.Spec{
		fakeSpec("second_order", "1.0.0", dep("derived", ">=1.0.0")),
		fakeSpec("derived", "1.0.0", dep("base", ">=1.0.0")),
		fakeSpec("base", "1.2.3"),
	}

	report, err := runner.Run(context.Background(), specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"base", "derived", "second_order"}
	if len(fake.built) != len(want) {
		t.Fatalf("expected %d builds, got %v", len(want), fake.built)
	}
	for i, name := range want {
		if fake.built[i] != name {
			t.Errorf("build %d: expected %s, got %s", i, name, fake.built[i])
		}
	}

	if report.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("report should carry a run ID")
	}
	if len(report.Steps) != 3 {
		t.Errorf("expected 3 report steps, got %d", len(report.Steps))
	}
}

func TestRun_FetchesExternalFromCache(t *testing.T) {
	runner, fake, c := newTestRunner(t)

	artifact := filepath.Join(t.TempDir(), "libx.a")
	if err := os.WriteFile(artifact, []byte("lib"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	if _, err := c.Put("libx", semver.MustParseVersion("1.2.0"), []string{artifact}); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	specs := []buildspec.Spec{
		fakeSpec("app", "0.1.0", dep("libx", ">=1.0.0")),
	}

	report, err := runner.Run(context.Background(), specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %+v", report.Steps)
	}
	fetched := report.Steps[0]
	if fetched.Kind != StepFetched || fetched.Name != "libx" || fetched.Version != "1.2.0" {
		t.Errorf("expected FETCHED libx 1.2.0 first, got %+v", fetched)
	}
	if report.Steps[1].Kind != StepBuilt || report.Steps[1].Name != "app" {
		t.Errorf("expected BUILT app second, got %+v", report.Steps[1])
	}
	if len(fake.built) != 1 || fake.built[0] != "app" {
		t.Errorf("expected only app to build, got %v", fake.built)
	}
}

func TestRun_UnresolvedDependency(t *testing.T) {
	runner, fake, _ := newTestRunner(t)

	specs := []buildspec.Spec{
		fakeSpec("app", "0.1.0", dep("ghost", ">=1.0.0")),
	}

	_, err := runner.Run(context.Background(), specs)
	if !errors.Is(err, ErrUnresolvedDependency) {
		t.Fatalf("expected ErrUnresolvedDependency, got %v", err)
	}

	// Preflight падает до каких-либо сборок.
	if len(fake.built) != 0 {
		t.Errorf("nothing should build, got %v", fake.built)
	}
}

func TestRun_CyclicDependency(t *testing.T) {
	runner, fake, _ := newTestRunner(t)

	specs := []buildspec.Spec{
		fakeSpec("a", "1.0.0", dep("b", ">=1.0.0")),
		fakeSpec("b", "1.0.0", dep("a", ">=1.0.0")),
	}

	_, err := runner.Run(context.Background(), specs)
	if !errors.Is(err, ErrCyclicDependency) {
		t.Fatalf("expected ErrCyclicDependency, got %v", err)
	}
	if len(fake.built) != 0 {
		t.Errorf("nothing should build in a cycle, got %v", fake.built)
	}
}

func TestRun_BuildFailure(t *testing.T) {
	runner, fake, _ := newTestRunner(t)
	fake.fail["derived"] = true

	specs := []buildspec.Spec{
		fakeSpec("base", "1.0.0"),
		fakeSpec("derived", "1.0.0", dep("base", ">=1.0.0")),
		fakeSpec("leaf", "1.0.0", dep("derived", ">=1.0.0")),
	}

	_, err := runner.Run(context.Background(), specs)

	var berr *BuildError
	if !errors.As(err, &berr) {
		t.Fatalf("expected BuildError, got %v", err)
	}
	if berr.Spec != "derived" {
		t.Errorf("expected failure on derived, got %s", berr.Spec)
	}

	// base успел собраться, leaf — нет.
	if len(fake.built) != 1 || fake.built[0] != "base" {
		t.Errorf("expected only base built before failure, got %v", fake.built)
	}
}

func TestRun_UnknownBuildType(t *testing.T) {
	runner, _, _ := newTestRunner(t)

	spec := fakeSpec("app", "1.0.0")
	spec.Build.Type = "docker"

	_, err := runner.Run(context.Background(), []buildspec.Spec{spec})
	if !errors.Is(err, ErrUnknownBuildType) {
		t.Fatalf("expected ErrUnknownBuildType, got %v", err)
	}
}
