package execution

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"runnable"
	"runnable/internal/domain"
	"runnable/internal/logging"
)

// Runner invokes a single registered case and classifies the outcome.
// Invoke itself lets abnormal terminations unwind so the end marker is
// never printed for them; the runner is where they are contained so one
// bad case cannot take down the whole run.
type Runner struct {
	out io.Writer
}

// NewRunner creates a new Runner writing case markers to out.
func NewRunner(out io.Writer) *Runner {
	return &Runner{out: out}
}

// invocation captures everything that came out of one wrapped call
type invocation struct {
	elapsed  time.Duration
	err      error
	panicked bool
	panicVal interface{}
	stack    []string
}

// Run invokes the case and returns its result. Skipped cases are never
// invoked; expected panics count as passes.
func (r *Runner) Run(c runnable.Case, workerID int) domain.CaseResult {
	if c.Skip != "" {
		logging.Debug("worker %d skipping %s: %s", workerID, c.Name, c.Skip)
		return domain.CaseResult{
			Name:       c.Name,
			Success:    true,
			Skipped:    true,
			SkipReason: c.Skip,
		}
	}

	start := time.Now()
	inv := r.invoke(c)

	if inv.panicked {
		if c.ExpectPanic != "" && strings.Contains(fmt.Sprint(inv.panicVal), c.ExpectPanic) {
			return domain.CaseResult{
				Name:     c.Name,
				Success:  true,
				Duration: time.Since(start),
			}
		}
		logging.Error("worker %d: case %s panicked: %v", workerID, c.Name, inv.panicVal)
		return domain.CaseResult{
			Name:     c.Name,
			Success:  false,
			Error:    fmt.Errorf("panic: %v", inv.panicVal),
			Stack:    inv.stack,
			Duration: time.Since(start),
		}
	}

	if inv.err != nil {
		return domain.CaseResult{
			Name:     c.Name,
			Success:  false,
			Error:    inv.err,
			Duration: time.Since(start),
		}
	}

	if c.ExpectPanic != "" {
		return domain.CaseResult{
			Name:     c.Name,
			Success:  false,
			Error:    fmt.Errorf("expected panic containing %q, case completed normally", c.ExpectPanic),
			Duration: inv.elapsed,
		}
	}

	return domain.CaseResult{
		Name:     c.Name,
		Success:  true,
		Duration: inv.elapsed,
	}
}

// invoke calls the wrapper under a recover so a panicking case unwinds no
// further than here. This is the only recover point in the pipeline.
func (r *Runner) invoke(c runnable.Case) (inv invocation) {
	defer func() {
		if v := recover(); v != nil {
			inv.panicked = true
			inv.panicVal = v
			inv.stack = strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
		}
	}()
	inv.elapsed, inv.err = c.Invoke(r.out)
	return inv
}
