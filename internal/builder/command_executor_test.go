package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaiso/Fabrica/internal/buildspec"
	"github.com/shaiso/Fabrica/internal/semver"
)

func TestCommandExecutor_ProducesArtifact(t *testing.T) {
	workdir := t.TempDir()
	spec := &buildspec.Spec{
		Name:    "base",
		Version: semver.MustParseVersion("1.0.0"),
		Build: buildspec.BuildConfig{
			Command:   []string{"sh", "-c", "echo built > base.txt"},
			Workdir:   workdir,
			Artifacts: []string{"base.txt"},
		},
	}

	result, err := (&CommandExecutor{}).Execute(context.Background(), spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %v", result.Artifacts)
	}
	if _, err := os.Stat(filepath.Join(workdir, "base.txt")); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestCommandExecutor_MissingArtifact(t *testing.T) {
	spec := &buildspec.Spec{
		Name:    "base",
		Version: semver.MustParseVersion("1.0.0"),
		Build: buildspec.BuildConfig{
			Command:   []string{"true"},
			Workdir:   t.TempDir(),
			Artifacts: []string{"never-written.txt"},
		},
	}

	_, err := (&CommandExecutor{}).Execute(context.Background(), spec)
	if !errors.Is(err, ErrArtifactMissing) {
		t.Errorf("expected ErrArtifactMissing, got %v", err)
	}
}

func TestCommandExecutor_CommandFails(t *testing.T) {
	spec := &buildspec.Spec{
		Name:    "base",
		Version: semver.MustParseVersion("1.0.0"),
		Build: buildspec.BuildConfig{
			Command: []string{"sh", "-c", "echo broken >&2; exit 3"},
			Workdir: t.TempDir(),
		},
	}

	_, err := (&CommandExecutor{}).Execute(context.Background(), spec)
	if !errors.Is(err, ErrBuildFailed) {
		t.Fatalf("expected ErrBuildFailed, got %v", err)
	}

	var berr *BuildError
	if !errors.As(err, &berr) || berr.Output == "" {
		t.Errorf("expected captured command output, got %+v", err)
	}
}

func TestCommandExecutor_EmptyCommand(t *testing.T) {
	spec := &buildspec.Spec{
		Name:    "base",
		Version: semver.MustParseVersion("1.0.0"),
		Build:   buildspec.BuildConfig{Type: buildspec.BuildTypeCommand},
	}

	_, err := (&CommandExecutor{}).Execute(context.Background(), spec)
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
}
