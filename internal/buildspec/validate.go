package buildspec

import "fmt"

// Допустимые типы сборки.
var validBuildTypes = map[string]bool{
	BuildTypeCommand: true,
	BuildTypeNoop:    true,
}

// Validate выполняет полную валидацию набора спеков.
//
// Проверяет:
//   - Непустоту набора
//   - Имя и версию каждого спека
//   - Уникальность пары имя@версия
//   - Корректность типа сборки
//   - Объявления зависимостей (имя, ограничение)
//   - Отсутствие петель (спек закрывает собственную зависимость)
//
// Движок графа намеренно не проверяет вход — проверка до построения
// графа даёт понятные ошибки вместо молча незавершённого обхода.
func Validate(specs []Spec) error {
	if len(specs) == 0 {
		return ErrNoSpecs
	}

	seen := make(map[string]bool)

	for i := range specs {
		spec := &specs[i]

		if err := validateSpec(spec); err != nil {
			return err
		}

		key := spec.String()
		if seen[key] {
			return NewValidationError(spec.Name, "version",
				fmt.Sprintf("duplicate spec: %s", key), ErrDuplicateSpec)
		}
		seen[key] = true
	}

	return nil
}

// validateSpec валидирует один спек.
func validateSpec(spec *Spec) error {
	if spec.Name == "" {
		return NewValidationError("", "name", "spec has empty name", ErrEmptyName)
	}

	if spec.Version.IsZero() {
		return NewValidationError(spec.Name, "version",
			"spec has empty version", ErrEmptyVersion)
	}

	if spec.Build.Type != "" && !validBuildTypes[spec.Build.Type] {
		return NewValidationError(spec.Name, "build.type",
			fmt.Sprintf("unknown build type: %s", spec.Build.Type), ErrUnknownBuildType)
	}

	for _, dep := range spec.Requires {
		if dep.Name == "" {
			return NewValidationError(spec.Name, "dependencies",
				"dependency has empty name", ErrEmptyDependencyName)
		}
		if dep.Constraint.IsZero() {
			return NewValidationError(spec.Name, "dependencies",
				fmt.Sprintf("dependency %s has empty version constraint", dep.Name),
				ErrEmptyConstraint)
		}
		if spec.Matches(dep) {
			return NewValidationError(spec.Name, "dependencies",
				fmt.Sprintf("spec satisfies its own dependency %s", dep),
				ErrSelfDependency)
		}
	}

	return nil
}
