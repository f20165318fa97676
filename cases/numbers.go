package cases

import (
	"fmt"

	"runnable"
)

func init() {
	runnable.MustRegister(runnable.Case{
		Name: "numbers/fib",
		Run:  fibKnownValues,
	})
	runnable.MustRegister(runnable.Case{
		Name: "numbers/primes",
		Run:  primeCount,
	})
}

func fib(n int) uint64 {
	a, b := uint64(0), uint64(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

func fibKnownValues() error {
	known := map[int]uint64{
		0:  0,
		1:  1,
		10: 55,
		50: 12586269025,
		90: 2880067194370816120,
	}
	for n, want := range known {
		if got := fib(n); got != want {
			return fmt.Errorf("fib(%d) = %d, expected %d", n, got, want)
		}
	}
	return nil
}

func primeCount() error {
	const limit = 1000
	sieve := make([]bool, limit+1)
	count := 0
	for i := 2; i <= limit; i++ {
		if sieve[i] {
			continue
		}
		count++
		for j := i * i; j <= limit; j += i {
			sieve[j] = true
		}
	}
	// There are 168 primes below 1000
	if count != 168 {
		return fmt.Errorf("counted %d primes below %d, expected 168", count, limit)
	}
	return nil
}
