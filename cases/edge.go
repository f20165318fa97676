package cases

import (
	"runnable"
)

func init() {
	runnable.MustRegister(runnable.Case{
		Name:        "edge/expected-panic",
		Run:         outOfRange,
		ExpectPanic: "out of range",
	})
	runnable.MustRegister(runnable.Case{
		Name: "edge/skipped",
		Run:  neverRuns,
		Skip: "needs a multi-gigabyte fixture that is not bundled",
	})
}

// outOfRange demonstrates that a panicking case leaves no end marker and
// still counts as a pass when the panic is the expected outcome.
func outOfRange() error {
	first := []int{1, 2, 3}
	_ = first[len(first)]
	return nil
}

func neverRuns() error {
	return nil
}
