package suite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"runnable"
	"runnable/internal/discovery"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write suite file: %v", err)
	}
	return path
}

func testRegistry(t *testing.T) *runnable.Registry {
	t.Helper()
	reg := runnable.NewRegistry()
	for _, name := range []string{"numbers/fib", "numbers/primes", "strings/reverse"} {
		reg.MustRegister(runnable.Case{Name: name, Run: func() error { return nil }})
	}
	return reg
}

func TestLoad(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		path := writeSuite(t, `
version: 1
name: smoke
cases:
  - name: numbers/fib
  - pattern: strings/*
`)
		s, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "smoke" {
			t.Errorf("expected name smoke, got %s", s.Name)
		}
		if len(s.Cases) != 2 {
			t.Errorf("expected 2 selections, got %d", len(s.Cases))
		}
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv("SUITE_GROUP", "numbers")
		path := writeSuite(t, `
version: 1
name: env
cases:
  - pattern: ${SUITE_GROUP}/*
`)
		s, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Cases[0].Pattern != "numbers/*" {
			t.Errorf("environment reference not expanded: %s", s.Cases[0].Pattern)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeSuite(t, `
version: 2
name: future
cases:
  - name: numbers/fib
`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for unsupported version")
		}
	})

	t.Run("no selections", func(t *testing.T) {
		path := writeSuite(t, `
version: 1
name: empty
cases: []
`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for empty suite")
		}
	})

	t.Run("selection without name or pattern", func(t *testing.T) {
		path := writeSuite(t, `
version: 1
name: bad
cases:
  - skip: why not
`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for selection without name or pattern")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load("/non/existent/file.suite.yaml"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestSuite_Resolve(t *testing.T) {
	reg := testRegistry(t)
	selector := discovery.NewSelector()

	t.Run("exact and pattern selections", func(t *testing.T) {
		s := &Suite{
			Version: 1,
			Name:    "mixed",
			Cases: []Selection{
				{Name: "strings/reverse"},
				{Pattern: "numbers/*"},
			},
		}
		cases, err := s.Resolve(reg, selector)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := []string{"strings/reverse", "numbers/fib", "numbers/primes"}
		if len(cases) != len(expected) {
			t.Fatalf("expected %d cases, got %d", len(expected), len(cases))
		}
		for i, name := range expected {
			if cases[i].Name != name {
				t.Errorf("cases[%d]: expected %s, got %s", i, name, cases[i].Name)
			}
		}
	})

	t.Run("unknown exact name fails", func(t *testing.T) {
		s := &Suite{
			Version: 1,
			Name:    "broken",
			Cases:   []Selection{{Name: "missing/case"}},
		}
		_, err := s.Resolve(reg, selector)
		if !errors.Is(err, runnable.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("forced skip applies", func(t *testing.T) {
		s := &Suite{
			Version: 1,
			Name:    "skippy",
			Cases:   []Selection{{Name: "numbers/fib", Skip: "flaky on CI"}},
		}
		cases, err := s.Resolve(reg, selector)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cases[0].Skip != "flaky on CI" {
			t.Errorf("forced skip not applied: %q", cases[0].Skip)
		}
	})

	t.Run("duplicates keep first mention", func(t *testing.T) {
		s := &Suite{
			Version: 1,
			Name:    "dupes",
			Cases: []Selection{
				{Name: "numbers/fib", Skip: "first mention"},
				{Pattern: "numbers/*"},
			},
		}
		cases, err := s.Resolve(reg, selector)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 2 {
			t.Fatalf("expected 2 cases after dedupe, got %d", len(cases))
		}
		if cases[0].Name != "numbers/fib" || cases[0].Skip != "first mention" {
			t.Errorf("first mention not kept: %+v", cases[0])
		}
	})
}
