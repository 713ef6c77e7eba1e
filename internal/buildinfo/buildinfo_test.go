package buildinfo

import (
	"strings"
	"testing"
)

func withVars(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestShort(t *testing.T) {
	withVars(t, "dev", "unknown", "unknown")
	if got := Short(); got != "dev" {
		t.Fatalf("Short = %q, want dev", got)
	}
	withVars(t, "dev", "abc123", "unknown")
	if got := Short(); got != "abc123" {
		t.Fatalf("Short = %q, want abc123", got)
	}
	withVars(t, "v1.2.0", "abc123", "unknown")
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short = %q, want v1.2.0", got)
	}
}

func TestString(t *testing.T) {
	withVars(t, "v1.2.0", "abc123", "2026-01-02")
	got := String()
	if !strings.HasPrefix(got, "v1.2.0 (abc123) built 2026-01-02 ") {
		t.Fatalf("String = %q", got)
	}

	withVars(t, "dev", "abc123", "unknown")
	if got := String(); strings.Contains(got, "(abc123)") {
		t.Fatalf("commit repeated: %q", got)
	}
}
