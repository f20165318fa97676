package runnable

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

var endLineRe = regexp.MustCompile(`^(.+) \[end\]: took (\d+) ms\.\.\.$`)

// parseEndLine extracts the name and millisecond count from an end marker.
func parseEndLine(t *testing.T, line string) (string, int) {
	t.Helper()
	m := endLineRe.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("line %q does not match the end marker format", line)
	}
	ms, err := strconv.Atoi(m[2])
	if err != nil {
		t.Fatalf("bad millisecond count in %q: %v", line, err)
	}
	return m[1], ms
}

func TestInvoke_Success(t *testing.T) {
	var buf bytes.Buffer
	c := Case{Name: "demo-ok", Run: func() error { return nil }}

	elapsed, err := c.Invoke(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 lines, got %d: %q", len(lines), buf.String())
	}

	if lines[0] != "demo-ok [start]" {
		t.Errorf("bad start line: %q", lines[0])
	}

	name, ms := parseEndLine(t, lines[1])
	if name != "demo-ok" {
		t.Errorf("end line carries name %q, expected demo-ok", name)
	}
	if ms < 0 {
		t.Errorf("negative duration %d", ms)
	}
	// The printed count is derived from the returned duration.
	if int64(ms) != elapsed.Milliseconds() {
		t.Errorf("printed %d ms but Invoke returned %d ms", ms, elapsed.Milliseconds())
	}
}

func TestInvoke_ErrorSkipsEndMarker(t *testing.T) {
	sentinel := errors.New("assertion failed")
	var buf bytes.Buffer
	c := Case{Name: "demo-fail", Run: func() error { return sentinel }}

	_, err := c.Invoke(&buf)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected the case's own error back, got %v", err)
	}

	if got := buf.String(); got != "demo-fail [start]\n" {
		t.Errorf("expected only the start line, got %q", got)
	}
}

func TestInvoke_PanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	c := Case{Name: "demo-panic", Run: func() error { panic("kaboom") }}

	panicked := false
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				panicked = true
				if fmt.Sprint(rec) != "kaboom" {
					t.Errorf("panic value altered: %v", rec)
				}
			}
		}()
		c.Invoke(&buf)
	}()

	if !panicked {
		t.Fatal("panic did not propagate past the wrapper")
	}
	if got := buf.String(); got != "demo-panic [start]\n" {
		t.Errorf("expected only the start line, got %q", got)
	}
}

func TestInvoke_SleepDuration(t *testing.T) {
	var buf bytes.Buffer
	c := Case{Name: "demo-sleep", Run: func() error {
		time.Sleep(50 * time.Millisecond)
		return nil
	}}

	elapsed, err := c.Invoke(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed < 50*time.Millisecond {
		t.Errorf("elapsed %v shorter than the 50ms sleep", elapsed)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	_, ms := parseEndLine(t, lines[1])
	if ms < 50 {
		t.Errorf("reported %d ms for a 50ms sleep", ms)
	}
}

func TestRegistry_Invoke(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Case{Name: "reg-demo", Run: func() error { return nil }})

	t.Run("registered name", func(t *testing.T) {
		var buf bytes.Buffer
		if _, err := reg.Invoke(&buf, "reg-demo"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "reg-demo [start]\n") {
			t.Errorf("missing start marker: %q", buf.String())
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := reg.Invoke(&buf, "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("unknown name produced output: %q", buf.String())
		}
	})
}

func TestTimed_RoundTrip(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		var buf bytes.Buffer
		got := Timed(&buf, "timed-int", func() int { return 42 })
		if got != 42 {
			t.Errorf("value altered through the wrapper: %d", got)
		}
	})

	t.Run("struct value", func(t *testing.T) {
		type payload struct {
			ID   int
			Tag  string
			Data []byte
		}
		in := payload{ID: 7, Tag: "seven", Data: []byte{1, 2, 3}}

		var buf bytes.Buffer
		got := Timed(&buf, "timed-struct", func() payload { return in })
		if got.ID != in.ID || got.Tag != in.Tag || !bytes.Equal(got.Data, in.Data) {
			t.Errorf("value altered through the wrapper: %+v", got)
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %q", buf.String())
		}
		if lines[0] != "timed-struct [start]" {
			t.Errorf("bad start line: %q", lines[0])
		}
		if name, _ := parseEndLine(t, lines[1]); name != "timed-struct" {
			t.Errorf("end line carries name %q", name)
		}
	})
}

func TestTimed_PanicSkipsEndMarker(t *testing.T) {
	var buf bytes.Buffer

	panicked := false
	func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		Timed(&buf, "timed-panic", func() int { panic("boom") })
	}()

	if !panicked {
		t.Fatal("panic did not propagate past Timed")
	}
	if got := buf.String(); got != "timed-panic [start]\n" {
		t.Errorf("expected only the start line, got %q", got)
	}
}

// recordingWriter captures each Write call as one entry, so interleaving
// across concurrent invocations is observable.
type recordingWriter struct {
	mu     sync.Mutex
	writes []string
}

func (rw *recordingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	rw.writes = append(rw.writes, string(p))
	return len(p), nil
}

func TestInvoke_ConcurrentInvocations(t *testing.T) {
	rec := &recordingWriter{}

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := Case{Name: fmt.Sprintf("conc-%d", i), Run: func() error {
				time.Sleep(time.Duration(i) * time.Millisecond)
				return nil
			}}
			if _, err := c.Invoke(rec); err != nil {
				t.Errorf("case %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if len(rec.writes) != 2*n {
		t.Fatalf("expected %d writes, got %d", 2*n, len(rec.writes))
	}

	startIdx := make(map[string]int)
	endIdx := make(map[string]int)
	for i, w := range rec.writes {
		if !strings.HasSuffix(w, "\n") {
			t.Errorf("write %q is not a complete line", w)
			continue
		}
		line := strings.TrimSuffix(w, "\n")
		switch {
		case strings.HasSuffix(line, " [start]"):
			name := strings.TrimSuffix(line, " [start]")
			if _, dup := startIdx[name]; dup {
				t.Errorf("duplicate start marker for %s", name)
			}
			startIdx[name] = i
		case endLineRe.MatchString(line):
			name, ms := parseEndLine(t, line)
			if ms < 0 {
				t.Errorf("negative duration for %s", name)
			}
			if _, dup := endIdx[name]; dup {
				t.Errorf("duplicate end marker for %s", name)
			}
			endIdx[name] = i
		default:
			t.Errorf("write %q is neither a start nor an end marker", w)
		}
	}

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("conc-%d", i)
		si, ok := startIdx[name]
		if !ok {
			t.Errorf("no start marker for %s", name)
			continue
		}
		ei, ok := endIdx[name]
		if !ok {
			t.Errorf("no end marker for %s", name)
			continue
		}
		if si >= ei {
			t.Errorf("%s: start at %d not before end at %d", name, si, ei)
		}
	}
}
