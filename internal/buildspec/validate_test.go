package buildspec

import (
	"errors"
	"testing"

	"github.com/shaiso/Fabrica/internal/semver"
)

func validSpec(name string) Spec {
	return Spec{
		Name:    name,
		Version: semver.MustParseVersion("1.0.0"),
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrNoSpecs) {
		t.Errorf("expected ErrNoSpecs, got %v", err)
	}
}

func TestValidate_EmptyName(t *testing.T) {
	err := Validate([]Spec{{Version: semver.MustParseVersion("1.0.0")}})
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestValidate_EmptyVersion(t *testing.T) {
	err := Validate([]Spec{{Name: "base"}})
	if !errors.Is(err, ErrEmptyVersion) {
		t.Errorf("expected ErrEmptyVersion, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Spec != "base" {
		t.Errorf("expected ValidationError for spec base, got %v", err)
	}
}

func TestValidate_DuplicateSpec(t *testing.T) {
	err := Validate([]Spec{validSpec("base"), validSpec("base")})
	if !errors.Is(err, ErrDuplicateSpec) {
		t.Errorf("expected ErrDuplicateSpec, got %v", err)
	}

	// Одно имя с разными версиями — не дубликат.
	other := validSpec("base")
	other.Version = semver.MustParseVersion("2.0.0")
	if err := Validate([]Spec{validSpec("base"), other}); err != nil {
		t.Errorf("unexpected error for distinct versions: %v", err)
	}
}

func TestValidate_UnknownBuildType(t *testing.T) {
	spec := validSpec("base")
	spec.Build.Type = "docker"

	err := Validate([]Spec{spec})
	if !errors.Is(err, ErrUnknownBuildType) {
		t.Errorf("expected ErrUnknownBuildType, got %v", err)
	}
}

func TestValidate_EmptyDependencyName(t *testing.T) {
	spec := validSpec("app")
	spec.Requires = []Declaration{{Constraint: semver.MustParseConstraint("^1.0.0")}}

	err := Validate([]Spec{spec})
	if !errors.Is(err, ErrEmptyDependencyName) {
		t.Errorf("expected ErrEmptyDependencyName, got %v", err)
	}
}

func TestValidate_EmptyConstraint(t *testing.T) {
	spec := validSpec("app")
	spec.Requires = []Declaration{{Name: "base"}}

	err := Validate([]Spec{spec})
	if !errors.Is(err, ErrEmptyConstraint) {
		t.Errorf("expected ErrEmptyConstraint, got %v", err)
	}
}

func TestValidate_SelfDependency(t *testing.T) {
	spec := validSpec("base")
	spec.Requires = []Declaration{
		{Name: "base", Constraint: semver.MustParseConstraint(">=1.0.0")},
	}

	err := Validate([]Spec{spec})
	if !errors.Is(err, ErrSelfDependency) {
		t.Errorf("expected ErrSelfDependency, got %v", err)
	}
}

func TestValidate_OK(t *testing.T) {
	base := validSpec("base")
	app := validSpec("app")
	app.Requires = []Declaration{
		{Name: "base", Constraint: semver.MustParseConstraint("^1.0.0")},
		{Name: "external/lib", Constraint: semver.MustParseConstraint(">=2.0.0")},
	}

	if err := Validate([]Spec{base, app}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
