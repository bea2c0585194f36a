package buildspec

import (
	"github.com/shaiso/Fabrica/internal/semver"
)

// Типы сборки.
const (
	// BuildTypeCommand — сборка внешней командой (по умолчанию,
	// если команда задана).
	BuildTypeCommand = "command"

	// BuildTypeNoop — спек без шага сборки (мета-пакет).
	BuildTypeNoop = "noop"
)

// Declaration — объявление зависимости: имя и ограничение версии.
//
// Значение неизменно и принадлежит объявившему спеку.
type Declaration struct {
	// Name — имя требуемого пакета. Сегменты разделяются "/".
	Name string `json:"name" yaml:"name"`

	// Constraint — ограничение на версию ("^1.0.0", ">=1.2 <2.0").
	Constraint semver.Constraint `json:"version" yaml:"version"`
}

func (d Declaration) String() string {
	return d.Name + " " + d.Constraint.String()
}

// BuildConfig — конфигурация шага сборки.
type BuildConfig struct {
	// Type — тип сборки: command или noop.
	// Пустое значение: command при заданной команде, иначе noop.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Command — команда сборки и её аргументы.
	Command []string `json:"command,omitempty" yaml:"command,omitempty"`

	// Workdir — рабочая директория команды.
	Workdir string `json:"workdir,omitempty" yaml:"workdir,omitempty"`

	// Artifacts — пути артефактов относительно Workdir,
	// которые после сборки кладутся в кэш.
	Artifacts []string `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

// Spec — спецификация одной единицы сборки.
type Spec struct {
	// Name — имя пакета.
	Name string `json:"name" yaml:"name"`

	// Version — версия, которую производит эта сборка.
	Version semver.Version `json:"version" yaml:"version"`

	// Requires — упорядоченный список зависимостей.
	Requires []Declaration `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// Build — конфигурация шага сборки.
	Build BuildConfig `json:"build,omitempty" yaml:"build,omitempty"`
}

// Dependencies реализует depgraph.Node.
func (s Spec) Dependencies() []Declaration {
	return s.Requires
}

// Matches реализует depgraph.Node: спек закрывает объявление,
// если совпадает имя и версия удовлетворяет ограничение.
func (s Spec) Matches(dep Declaration) bool {
	return s.Name == dep.Name && semver.Satisfies(s.Version, dep.Constraint)
}

// BuildType возвращает действующий тип сборки с учётом умолчания.
func (s Spec) BuildType() string {
	if s.Build.Type != "" {
		return s.Build.Type
	}
	if len(s.Build.Command) > 0 {
		return BuildTypeCommand
	}
	return BuildTypeNoop
}

func (s Spec) String() string {
	return s.Name + "@" + s.Version.String()
}
