package builder

import (
	"context"

	"github.com/shaiso/Fabrica/internal/buildspec"
)

// NoopExecutor — executor для спеков без шага сборки.
//
// Мета-пакеты лишь группируют зависимости: сборка тривиально
// успешна и артефактов не производит.
type NoopExecutor struct{}

// Execute реализует Executor.
func (e *NoopExecutor) Execute(_ context.Context, _ *buildspec.Spec) (*Result, error) {
	return &Result{}, nil
}
