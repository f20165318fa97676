package runnable

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Marker formats. Each marker is formatted into a single Write call so
// concurrent invocations interleave whole lines only.
const (
	startFormat = "%s [start]\n"
	endFormat   = "%s [end]: took %d ms...\n"
)

// Invoke executes the case's logic exactly once in the current goroutine,
// bracketed by the start and end markers on w.
//
// The start marker is written first, then a monotonic timestamp is taken,
// then the logic runs. Only if the logic returns nil is the elapsed time
// computed, truncated to whole milliseconds, and reported in the end
// marker. On failure the end marker is never written: a non-nil error is
// returned unmodified, and a panic unwinds past the wrapper untouched.
// The duration covers the logic only, not the marker writes.
func (c Case) Invoke(w io.Writer) (time.Duration, error) {
	fmt.Fprintf(w, startFormat, c.Name)
	start := time.Now()
	if err := c.Run(); err != nil {
		return 0, err
	}
	elapsed := time.Since(start)
	fmt.Fprintf(w, endFormat, c.Name, elapsed.Milliseconds())
	return elapsed, nil
}

// Invoke looks up name and invokes the case, writing markers to w.
// Returns ErrNotFound (wrapped) when no case is registered under name.
func (r *Registry) Invoke(w io.Writer, name string) (time.Duration, error) {
	c, ok := r.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.Invoke(w)
}

// Invoke runs a case from the default registry with markers on stdout.
func Invoke(name string) (time.Duration, error) {
	return defaultRegistry.Invoke(os.Stdout, name)
}

// Timed brackets fn with the same markers and timing as Case.Invoke and
// hands back its value unaltered and uninspected. A panic inside fn
// unwinds past the end marker, which is then never written. Useful for
// timing logic that produces a value instead of an error.
func Timed[T any](w io.Writer, name string, fn func() T) T {
	fmt.Fprintf(w, startFormat, name)
	start := time.Now()
	v := fn()
	elapsed := time.Since(start)
	fmt.Fprintf(w, endFormat, name, elapsed.Milliseconds())
	return v
}
