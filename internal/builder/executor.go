package builder

import (
	"context"
	"fmt"

	"github.com/shaiso/Fabrica/internal/buildspec"
)

// Executor — интерфейс выполнения сборки одного спека.
//
// Реализации: CommandExecutor, NoopExecutor.
// Executor вызывается строго после того, как все зависимости спека
// уже выданы пайплайном.
type Executor interface {
	Execute(ctx context.Context, spec *buildspec.Spec) (*Result, error)
}

// Result — результат сборки спека.
type Result struct {
	// Artifacts — абсолютные пути произведённых артефактов.
	Artifacts []string

	// Output — вывод команды сборки (stdout и stderr вместе).
	Output string
}

// Registry — реестр executor'ов по типу сборки.
type Registry struct {
	executors map[string]Executor
}

// NewRegistry создаёт реестр с executor'ами по умолчанию.
//
// Регистрирует: command, noop.
func NewRegistry() *Registry {
	r := &Registry{executors: make(map[string]Executor)}
	r.Register(buildspec.BuildTypeCommand, &CommandExecutor{})
	r.Register(buildspec.BuildTypeNoop, &NoopExecutor{})
	return r
}

// Register добавляет executor для типа сборки.
func (r *Registry) Register(buildType string, executor Executor) {
	r.executors[buildType] = executor
}

// Get возвращает executor для типа сборки.
func (r *Registry) Get(buildType string) (Executor, error) {
	executor, ok := r.executors[buildType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuildType, buildType)
	}
	return executor, nil
}
