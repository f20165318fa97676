// Package runnable turns named blocks of logic into discoverable, independently
// invocable test cases with automatic timing instrumentation.
//
// A case is registered once, under a unique name, and invoked at most once per
// run by whatever harness enumerates the registry. Invoking a case brackets its
// execution with two console markers:
//
//	<name> [start]
//	<name> [end]: took <ms> ms...
//
// If the case fails, either by returning an error or by panicking, the end
// marker is never printed and the failure propagates to the caller untouched.
package runnable

import "strings"

// Func is the unit of logic a case executes. It takes no arguments and
// signals failure by returning a non-nil error or by panicking.
type Func func() error

// Case is a named, independently invocable unit of logic.
type Case struct {
	// Name identifies the case within its registry. It doubles as the
	// discovery key and the label on the console markers.
	Name string

	// Run is the wrapped logic. Invoked at most once per run.
	Run Func

	// Skip, when non-empty, tells the harness to report the case as
	// skipped (with this reason) instead of invoking it. The wrapper
	// itself never reads it.
	Skip string

	// ExpectPanic, when non-empty, tells the harness to treat a panic
	// whose message contains this substring as success, and normal
	// completion as failure. The wrapper itself never reads it.
	ExpectPanic string
}

// Validate reports whether the case can be registered.
func (c Case) Validate() error {
	if c.Name == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(c.Name, " \t\r\n") {
		return ErrNameInvalid
	}
	if c.Run == nil {
		return ErrRunNil
	}
	return nil
}
