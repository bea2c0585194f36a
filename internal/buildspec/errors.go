package buildspec

import "errors"

// Ошибки загрузки спеков.
var (
	// ErrUnsupportedFormat — расширение файла не .json/.yaml/.yml.
	ErrUnsupportedFormat = errors.New("unsupported spec file format")

	// ErrDecode — файл не разобрался как buildspec.
	ErrDecode = errors.New("spec file decode failed")
)

// Ошибки валидации набора спеков.
var (
	// ErrNoSpecs — набор пуст.
	ErrNoSpecs = errors.New("no build specs provided")

	// ErrEmptyName — спек без имени.
	ErrEmptyName = errors.New("spec has empty name")

	// ErrEmptyVersion — спек без версии.
	ErrEmptyVersion = errors.New("spec has empty version")

	// ErrDuplicateSpec — два спека с одинаковыми именем и версией.
	ErrDuplicateSpec = errors.New("duplicate spec name and version")

	// ErrEmptyDependencyName — объявление зависимости без имени.
	ErrEmptyDependencyName = errors.New("dependency has empty name")

	// ErrEmptyConstraint — объявление зависимости без ограничения версии.
	ErrEmptyConstraint = errors.New("dependency has empty version constraint")

	// ErrSelfDependency — спек удовлетворяет собственную зависимость.
	// В графе это петля: такой спек никогда не будет выдан обходом.
	ErrSelfDependency = errors.New("spec depends on itself")

	// ErrUnknownBuildType — неизвестный тип сборки.
	ErrUnknownBuildType = errors.New("unknown build type")
)

// ValidationError — ошибка валидации с контекстом.
type ValidationError struct {
	Spec    string // имя спека, где произошла ошибка
	Field   string // поле, вызвавшее ошибку
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.Spec != "" {
		return "spec " + e.Spec + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(spec, field, message string, err error) *ValidationError {
	return &ValidationError{
		Spec:    spec,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
