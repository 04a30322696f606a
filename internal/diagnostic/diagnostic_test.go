package diagnostic

import (
	"strings"
	"testing"
)

func TestLocationStringFormats(t *testing.T) {
	cases := []struct {
		loc  Location
		want string
	}{
		{Location{}, ""},
		{Location{File: "Repo.kt"}, "Repo.kt"},
		{Location{File: "Repo.kt", Line: 10}, "Repo.kt:10"},
		{Location{File: "Repo.kt", Line: 10, Column: 5}, "Repo.kt:10:5"},
	}
	for _, c := range cases {
		if got := c.loc.String(); got != c.want {
			t.Errorf("Location%+v.String() = %q, want %q", c.loc, got, c.want)
		}
	}
}

func TestDiagnosticStringIncludesCodeAndPrefix(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     CodeMustBeInterface,
		Location: Location{File: "Repo.kt", Line: 3},
		Message:  "not an interface",
	}
	got := d.String()
	for _, want := range []string{"Repo.kt:3", "error", "[FAKT]", string(CodeMustBeInterface), "not an interface"} {
		if !strings.Contains(got, want) {
			t.Errorf("Diagnostic.String() missing %q, got: %s", want, got)
		}
	}
}

func TestCollectorRejectAndWarnAccumulate(t *testing.T) {
	c := NewCollector()
	c.Reject(CodeCannotBeSealed, Location{File: "A.kt"}, "sealed")
	c.Warn("unknown option")

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if !c.HasErrors() {
		t.Error("expected HasErrors() true after a Reject")
	}

	all := c.All()
	if all[0].Severity != SeverityError || all[1].Severity != SeverityWarning {
		t.Errorf("unexpected severities: %+v", all)
	}
}

func TestCollectorWarnOnlyHasNoErrors(t *testing.T) {
	c := NewCollector()
	c.Warn("just a warning")
	if c.HasErrors() {
		t.Error("expected HasErrors() false when only warnings recorded")
	}
}

func TestNilCollectorIsSafeNoOp(t *testing.T) {
	var c *Collector
	c.Reject(CodeMustBeInterface, Location{}, "ignored")
	c.Warn("ignored")

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 on nil collector", c.Len())
	}
	if c.HasErrors() {
		t.Error("expected HasErrors() false on nil collector")
	}
	if c.All() != nil {
		t.Errorf("All() = %+v, want nil on nil collector", c.All())
	}
}
