// Package semver — тонкая обёртка над github.com/Masterminds/semver/v3.
//
// Прячет стороннюю библиотеку за доменными типами Version и Constraint
// и добавляет (де)сериализацию, чтобы версии и ограничения можно было
// писать прямо в buildspec-файлах.
package semver

import (
	"encoding/json"
	"fmt"

	mm "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Version — семантическая версия.
type Version struct {
	v *mm.Version
}

// Constraint — ограничение на версию.
//
// Примеры: ">=1.2.0 <2.0.0", "^1.0.0", "~1.4".
type Constraint struct {
	c   *mm.Constraints
	raw string
}

// ParseVersion разбирает строку версии.
func ParseVersion(raw string) (Version, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("semver: parse version %q: %w", raw, err)
	}
	return Version{v: v}, nil
}

// MustParseVersion — ParseVersion с panic на ошибке. Только для тестов
// и литералов в коде.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseConstraint разбирает строку ограничения.
func ParseConstraint(raw string) (Constraint, error) {
	c, err := mm.NewConstraint(raw)
	if err != nil {
		return Constraint{}, fmt.Errorf("semver: parse constraint %q: %w", raw, err)
	}
	return Constraint{c: c, raw: raw}, nil
}

// MustParseConstraint — ParseConstraint с panic на ошибке.
func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// IsZero возвращает true для нулевой (неразобранной) версии.
func (v Version) IsZero() bool { return v.v == nil }

func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// IsZero возвращает true для нулевого (неразобранного) ограничения.
func (c Constraint) IsZero() bool { return c.c == nil }

// String возвращает исходную строку ограничения.
func (c Constraint) String() string { return c.raw }

// Satisfies сообщает, удовлетворяет ли версия ограничение.
// Нулевая версия или ограничение не удовлетворяют ничего.
func Satisfies(v Version, c Constraint) bool {
	if v.v == nil || c.c == nil {
		return false
	}
	return c.c.Check(v.v)
}

// Compare сравнивает версии: -1 если a < b, 0 при равенстве, 1 если a > b.
// Нулевая версия меньше любой разобранной.
func Compare(a, b Version) int {
	if a.v == nil && b.v == nil {
		return 0
	}
	if a.v == nil {
		return -1
	}
	if b.v == nil {
		return 1
	}
	return a.v.Compare(b.v)
}

// MaxSatisfying возвращает наибольшую версию из candidates,
// удовлетворяющую ограничение. false — если такой нет.
func MaxSatisfying(c Constraint, candidates []Version) (Version, bool) {
	var best Version
	found := false
	for _, candidate := range candidates {
		if !Satisfies(candidate, c) {
			continue
		}
		if !found || Compare(candidate, best) > 0 {
			best = candidate
			found = true
		}
	}
	return best, found
}

// --- Сериализация ---

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Version) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseVersion(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseVersion(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (c Constraint) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

func (c *Constraint) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseConstraint(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Constraint) MarshalYAML() (any, error) {
	return c.raw, nil
}

func (c *Constraint) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseConstraint(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
