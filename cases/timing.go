package cases

import (
	"fmt"
	"time"

	"runnable"
)

func init() {
	runnable.MustRegister(runnable.Case{
		Name: "timing/sleepy",
		Run:  sleepFiftyMillis,
	})
	runnable.MustRegister(runnable.Case{
		Name: "timing/busy",
		Run:  busyChecksum,
	})
}

// sleepFiftyMillis exists to make the elapsed marker visibly non-zero.
func sleepFiftyMillis() error {
	time.Sleep(50 * time.Millisecond)
	return nil
}

func busyChecksum() error {
	var sum uint64
	for i := uint64(1); i <= 1_000_000; i++ {
		sum += i
	}
	const want = 500000500000
	if sum != want {
		return fmt.Errorf("checksum %d, expected %d", sum, want)
	}
	return nil
}
