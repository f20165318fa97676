package cases

import (
	"io"
	"testing"

	"runnable"
)

func TestCorpusRegistered(t *testing.T) {
	names := []string{
		"strings/reverse",
		"strings/fields",
		"numbers/fib",
		"numbers/primes",
		"timing/sleepy",
		"timing/busy",
		"edge/expected-panic",
		"edge/skipped",
	}
	for _, name := range names {
		if !runnable.Has(name) {
			t.Errorf("expected %s to be registered", name)
		}
	}
}

func TestComputationCasesPass(t *testing.T) {
	names := []string{
		"strings/reverse",
		"strings/fields",
		"numbers/fib",
		"numbers/primes",
		"timing/busy",
	}
	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			if _, err := runnable.Default().Invoke(io.Discard, name); err != nil {
				t.Errorf("case failed: %v", err)
			}
		})
	}
}
