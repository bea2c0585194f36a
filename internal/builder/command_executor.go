package builder

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/shaiso/Fabrica/internal/buildspec"
)

// CommandExecutor выполняет сборку внешней командой.
//
// Команда запускается в Build.Workdir (по умолчанию — текущая
// директория); stdout и stderr собираются в общий буфер. После
// успешного завершения проверяется наличие объявленных артефактов.
type CommandExecutor struct{}

// Execute реализует Executor.
func (e *CommandExecutor) Execute(ctx context.Context, spec *buildspec.Spec) (*Result, error) {
	if len(spec.Build.Command) == 0 {
		return nil, &BuildError{Spec: spec.Name, Err: ErrEmptyCommand}
	}

	cmd := exec.CommandContext(ctx, spec.Build.Command[0], spec.Build.Command[1:]...)
	cmd.Dir = spec.Build.Workdir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return nil, &BuildError{
			Spec:   spec.Name,
			Output: buf.String(),
			Err:    fmt.Errorf("%w: %v", ErrBuildFailed, err),
		}
	}

	artifacts := make([]string, 0, len(spec.Build.Artifacts))
	for _, rel := range spec.Build.Artifacts {
		path := rel
		if !filepath.IsAbs(path) {
			path = filepath.Join(spec.Build.Workdir, rel)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, &BuildError{
				Spec:   spec.Name,
				Output: buf.String(),
				Err:    fmt.Errorf("%w: %s", ErrArtifactMissing, rel),
			}
		}
		artifacts = append(artifacts, path)
	}

	return &Result{Artifacts: artifacts, Output: buf.String()}, nil
}
