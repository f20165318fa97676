package execution

import (
	"io"
	"sync"
)

// lockedWriter serializes Write calls from concurrent workers. The case
// markers are each emitted in a single Write, so guarding Write is enough
// to keep lines intact on a shared stream.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLockedWriter wraps w so concurrent writes cannot interleave.
func NewLockedWriter(w io.Writer) io.Writer {
	return &lockedWriter{w: w}
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
