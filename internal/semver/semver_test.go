package semver

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSatisfies(t *testing.T) {
	c := MustParseConstraint("^1.2.0")

	if !Satisfies(MustParseVersion("1.2.0"), c) {
		t.Fatalf("expected 1.2.0 to satisfy ^1.2.0")
	}
	if !Satisfies(MustParseVersion("1.9.9"), c) {
		t.Fatalf("expected 1.9.9 to satisfy ^1.2.0")
	}
	if Satisfies(MustParseVersion("2.0.0"), c) {
		t.Fatalf("expected 2.0.0 to NOT satisfy ^1.2.0")
	}
	if Satisfies(Version{}, c) {
		t.Fatalf("zero version must not satisfy anything")
	}
}

func TestMaxSatisfying(t *testing.T) {
	c := MustParseConstraint(">=1.0.0 <2.0.0")
	candidates := []Version{
		MustParseVersion("0.9.0"),
		MustParseVersion("1.0.0"),
		MustParseVersion("1.5.0"),
		MustParseVersion("2.0.0"),
	}

	best, ok := MaxSatisfying(c, candidates)
	if !ok {
		t.Fatalf("expected to find a satisfying version")
	}
	if Compare(best, MustParseVersion("1.5.0")) != 0 {
		t.Fatalf("expected best=1.5.0, got %s", best)
	}

	if _, ok := MaxSatisfying(MustParseConstraint(">=3.0.0"), candidates); ok {
		t.Fatalf("expected no satisfying version for >=3.0.0")
	}
}

func TestVersionJSON(t *testing.T) {
	var v Version
	if err := json.Unmarshal([]byte(`"1.2.3"`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Fatalf("expected 1.2.3, got %s", v)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"1.2.3"` {
		t.Fatalf("expected \"1.2.3\", got %s", out)
	}

	if err := json.Unmarshal([]byte(`"not-a-version"`), &v); err == nil {
		t.Fatal("expected error for invalid version")
	}
}

func TestConstraintYAML(t *testing.T) {
	var doc struct {
		Version Constraint `yaml:"version"`
	}
	if err := yaml.Unmarshal([]byte("version: \">=1.0.0\"\n"), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Version.String() != ">=1.0.0" {
		t.Fatalf("expected >=1.0.0, got %s", doc.Version)
	}
	if !Satisfies(MustParseVersion("1.4.0"), doc.Version) {
		t.Fatal("expected 1.4.0 to satisfy the parsed constraint")
	}
}
