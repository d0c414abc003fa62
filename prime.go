package numtheory

import (
	"io"
	"math"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/numtheory/bigint"
)

// strongTestRounds is the number of rounds handed to the strong
// probable-prime test for every candidate that survives the sieve.
//
// More rounds mean fewer false positives, but more expensive calculations.
//
// 20 is the same number that Go uses internally.
const strongTestRounds = 20

// GeneratePrime returns a uniformly random probable prime of exactly numBits
// bits, drawing candidates from rand until one passes. The returned value
// carries a declared size of numBits.
func GeneratePrime(rand io.Reader, numBits uint) (*bigint.UnsignedInteger, error) {
	if numBits < 2 {
		return nil, errors.New("numtheory: prime size must be at least 2-bit")
	}
	return searchPrime(rand, numBits, false)
}

// GenerateSafePrime returns a uniformly random probable safe prime of exactly
// numBits bits, i.e. a prime p for which (p-1)/2 is also prime. The returned
// value carries a declared size of numBits.
func GenerateSafePrime(rand io.Reader, numBits uint) (*bigint.UnsignedInteger, error) {
	if numBits < 3 {
		return nil, errors.New("numtheory: safe prime size must be at least 3-bit")
	}
	return searchPrime(rand, numBits, true)
}

// ProbablySafePrime reports whether x is probably a safe prime, by running n
// rounds of the strong probable-prime test on x as well as on (x-1)/2.
//
// If x is a safe prime, ProbablySafePrime returns true. If x is chosen
// randomly and not a safe prime, it probably returns false.
func ProbablySafePrime(x *bigint.UnsignedInteger, n int) bool {
	if x.BitLen() < 3 {
		// 5 is the smallest safe prime.
		return false
	}
	if !x.ProbablyPrime(n) {
		return false
	}
	return x.Rsh(1).ProbablyPrime(n)
}

// searchPrime draws candidates of exactly numBits bits and walks each one
// forward in fixed strides, discarding every offset at which a small prime
// divides the shifted candidate, until an offset survives the whole table.
// Only survivors reach the strong probable-prime test; any survivor that
// fails it throws the whole walk away and the search starts over with a
// fresh draw.
func searchPrime(rand io.Reader, numBits uint, safe bool) (*bigint.UnsignedInteger, error) {
	table := smallPrimes()

	// One sieve prime per three candidate bits. Tiny searches still get one,
	// huge ones are capped by the table.
	count := int(numBits / 3)
	if count < 1 {
		count = 1
	}
	if count > len(table) {
		count = len(table)
	}

	// Residue checks add the offset to a remainder below table[count-1]; the
	// walk must stop before that sum can wrap a uint64.
	maxDelta := math.MaxUint64 - table[count-1]

	// Strides of 2 keep the candidate odd. A safe-prime walk moves in
	// strides of 4, and an offset is also dead when the shifted candidate is
	// 1 mod a sieve prime, since then that prime divides (candidate-1)/2.
	step := uint64(2)
	forbidden := uint64(0)
	kind := "prime"
	if safe {
		step = 4
		forbidden = 1
		kind = "safe prime"
	}

	residues := make([]uint64, count)
	attempts := 0

NextCandidate:
	for {
		attempts++

		candidate, err := bigint.Random(rand, numBits)
		if err != nil {
			return nil, err
		}
		// Pin the extremes: the top bit fixes the size, the bottom bit makes
		// the candidate odd.
		candidate.SetBit(numBits - 1)
		candidate.SetBit(0)

		// Reduce the candidate by each sieve prime once; the walk gets by on
		// these remainders alone. Index 0 holds the prime 2, excluded by
		// construction.
		for i := 1; i < count; i++ {
			residues[i] = candidate.ModUint64(table[i])
		}

	Sieve:
		for delta := uint64(0); delta <= maxDelta; delta += step {
			for i := 1; i < count; i++ {
				if (residues[i]+delta)%table[i] <= forbidden {
					continue Sieve
				}
			}

			candidate.SecureAddUint64(delta)
			if candidate.BitLen() != numBits {
				// The walk ran off the top of the requested range.
				continue NextCandidate
			}
			if !candidate.ProbablyPrime(strongTestRounds) {
				continue NextCandidate
			}
			if safe && !candidate.Rsh(1).ProbablyPrime(strongTestRounds) {
				continue NextCandidate
			}

			Logger.Tracef("found %d-bit %s after %d candidates", numBits, kind, attempts)
			return candidate, nil
		}
	}
}
