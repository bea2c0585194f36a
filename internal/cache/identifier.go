package cache

import (
	"fmt"
	"unicode"

	"github.com/shaiso/Fabrica/internal/semver"
)

// Segment — классифицированный сегмент пути кэша.
//
// Сегмент, начинающийся с цифры, — версия; любой другой непустой
// сегмент — часть имени пакета.
type Segment struct {
	// Name — сегмент имени (при IsVersion == false).
	Name string

	// Version — разобранная версия (при IsVersion == true).
	Version semver.Version

	// IsVersion — true, если сегмент является версией.
	IsVersion bool
}

// ParseSegment классифицирует один сегмент пути.
func ParseSegment(raw string) (Segment, error) {
	if raw == "" {
		return Segment{}, ErrEmptySegment
	}

	first := []rune(raw)[0]
	if !unicode.IsDigit(first) {
		return Segment{Name: raw}, nil
	}

	version, err := semver.ParseVersion(raw)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersionSegment, raw, err)
	}
	return Segment{Version: version, IsVersion: true}, nil
}
