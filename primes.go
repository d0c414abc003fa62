package numtheory

import (
	"math"
	"sync"
)

// sievePrimeBound caps the table of small primes available to the candidate
// sieve. A search uses one table entry per three candidate bits, so the
// table covers searches well past 4096 bits.
const sievePrimeBound = 1 << 14

// The table is shared by every search but only needed once one actually
// runs. sync.Once computes it at most once, on first use.
var (
	theSievePrimes  []uint64
	initSievePrimes sync.Once
)

// smallPrimes returns the ascending table of all primes below
// sievePrimeBound, starting at 2.
func smallPrimes() []uint64 {
	initSievePrimes.Do(func() {
		theSievePrimes = primesBelow(sievePrimeBound)
	})
	return theSievePrimes
}

// primesBelow generates all prime numbers < below with a Sieve of
// Eratosthenes.
func primesBelow(below int) []uint64 {
	composite := make([]bool, below)
	for p := 2; p*p < below; p++ {
		if composite[p] {
			continue
		}
		// p itself is prime; its multiples from p² upwards are not. Smaller
		// multiples were already crossed off by smaller primes.
		for i := p * p; i < below; i += p {
			composite[i] = true
		}
	}
	// There are approximately N / log N primes below N, which makes a decent
	// estimate of the output size.
	nF := float64(below)
	out := make([]uint64, 0, int(nF/math.Log(nF)))
	for p := 2; p < below; p++ {
		if !composite[p] {
			out = append(out, uint64(p))
		}
	}
	return out
}
