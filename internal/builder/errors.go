package builder

import "errors"

// Ошибки пайплайна сборки.
var (
	// ErrUnresolvedDependency — внешняя зависимость отсутствует в кэше.
	ErrUnresolvedDependency = errors.New("unresolved external dependency")

	// ErrCyclicDependency — обход остановился с остатком вершин в графе.
	ErrCyclicDependency = errors.New("cyclic dependency between specs")

	// ErrUnknownBuildType — для типа сборки нет executor'а.
	ErrUnknownBuildType = errors.New("no executor for build type")

	// ErrEmptyCommand — команда сборки не задана.
	ErrEmptyCommand = errors.New("build command is empty")

	// ErrArtifactMissing — объявленный артефакт не появился после сборки.
	ErrArtifactMissing = errors.New("declared artifact missing after build")

	// ErrBuildFailed — команда сборки завершилась с ошибкой.
	ErrBuildFailed = errors.New("build command failed")
)

// BuildError — ошибка сборки конкретного спека.
type BuildError struct {
	Spec   string // имя спека, на котором упал пайплайн
	Output string // вывод команды сборки, если был
	Err    error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *BuildError) Error() string {
	return "build " + e.Spec + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *BuildError) Unwrap() error {
	return e.Err
}
