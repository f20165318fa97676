package execution

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"runnable"
)

func TestRunner_Run(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		c           runnable.Case
		wantSuccess bool
		wantSkipped bool
		wantErr     error
		wantLines   int // Expected number of marker lines written
	}{
		{
			name: "passing case",
			c: runnable.Case{
				Name: "runner/pass",
				Run:  func() error { return nil },
			},
			wantSuccess: true,
			wantLines:   2,
		},
		{
			name: "failing case",
			c: runnable.Case{
				Name: "runner/fail",
				Run:  func() error { return errBoom },
			},
			wantSuccess: false,
			wantErr:     errBoom,
			wantLines:   1,
		},
		{
			name: "skipped case",
			c: runnable.Case{
				Name: "runner/skip",
				Run:  func() error { t.Fatal("skipped case must not run"); return nil },
				Skip: "not ready",
			},
			wantSuccess: true,
			wantSkipped: true,
			wantLines:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			runner := NewRunner(&buf)

			result := runner.Run(tt.c, 1)

			if result.Name != tt.c.Name {
				t.Errorf("expected name %q, got %q", tt.c.Name, result.Name)
			}
			if result.Success != tt.wantSuccess {
				t.Errorf("expected success=%v, got %v", tt.wantSuccess, result.Success)
			}
			if result.Skipped != tt.wantSkipped {
				t.Errorf("expected skipped=%v, got %v", tt.wantSkipped, result.Skipped)
			}
			if tt.wantErr != nil && !errors.Is(result.Error, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, result.Error)
			}

			lines := 0
			if out := buf.String(); out != "" {
				lines = len(strings.Split(strings.TrimSuffix(out, "\n"), "\n"))
			}
			if lines != tt.wantLines {
				t.Errorf("expected %d marker lines, got %d: %q", tt.wantLines, lines, buf.String())
			}
		})
	}
}

func TestRunner_Run_PanicContained(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(&buf)

	result := runner.Run(runnable.Case{
		Name: "runner/panics",
		Run:  func() error { panic("kaboom") },
	}, 1)

	if result.Success {
		t.Fatal("expected panicking case to fail")
	}
	if result.Error == nil || !strings.Contains(result.Error.Error(), "kaboom") {
		t.Errorf("expected panic value in error, got %v", result.Error)
	}
	if len(result.Stack) == 0 {
		t.Error("expected a captured stack trace")
	}

	out := buf.String()
	if !strings.Contains(out, "runner/panics [start]") {
		t.Errorf("expected start marker, got %q", out)
	}
	if strings.Contains(out, "[end]") {
		t.Errorf("end marker must not appear after a panic, got %q", out)
	}
}

func TestRunner_Run_ExpectPanic(t *testing.T) {
	t.Run("matching panic passes", func(t *testing.T) {
		var buf bytes.Buffer
		runner := NewRunner(&buf)

		result := runner.Run(runnable.Case{
			Name:        "runner/expected-panic",
			Run:         func() error { panic("index out of range") },
			ExpectPanic: "out of range",
		}, 1)

		if !result.Success {
			t.Errorf("expected matching panic to pass, got error %v", result.Error)
		}
	})

	t.Run("wrong panic value fails", func(t *testing.T) {
		var buf bytes.Buffer
		runner := NewRunner(&buf)

		result := runner.Run(runnable.Case{
			Name:        "runner/wrong-panic",
			Run:         func() error { panic("nil dereference") },
			ExpectPanic: "out of range",
		}, 1)

		if result.Success {
			t.Error("expected mismatched panic to fail")
		}
	})

	t.Run("normal completion fails", func(t *testing.T) {
		var buf bytes.Buffer
		runner := NewRunner(&buf)

		result := runner.Run(runnable.Case{
			Name:        "runner/no-panic",
			Run:         func() error { return nil },
			ExpectPanic: "out of range",
		}, 1)

		if result.Success {
			t.Error("expected case to fail when the promised panic never happened")
		}
		if result.Error == nil || !strings.Contains(result.Error.Error(), "completed normally") {
			t.Errorf("expected completed-normally error, got %v", result.Error)
		}
	})
}
