package bigint

import (
	"math/big"
	"math/bits"
)

// Add adds rhs into u in place. Operands must arrive pre-normalized: u's
// declared size must be at least rhs's. Callers Pad the smaller side first;
// a mismatch here is a bug, not data.
//
// The value becomes the true sum. The declared size stays at
// max(u.bits, rhs.bits) and grows by exactly one bit when the sum's tight
// length exceeds it, mirroring the carry out of a word-level add.
func (u *UnsignedInteger) Add(rhs *UnsignedInteger) {
	if u.bits < rhs.bits {
		panic("bigint: add operands not normalized: lhs declared size below rhs")
	}
	u.value.Add(&u.value, &rhs.value)
	if uint(u.value.BitLen()) > u.bits {
		u.bits++
	}
}

// SecureAddUint64 adds a native word into u without value-dependent branches
// or memory access: the carry chain walks the full declared word span every
// time, through a pooled scratch buffer sized by secAddItch. Only a carry
// out of the span grows the declared size, by exactly one bit.
func (u *UnsignedInteger) SecureAddUint64(k uint64) {
	n := wordsFor(u.bits)
	if n == 0 {
		panic("bigint: secure add on an empty span")
	}
	// On 32-bit platforms the addend can span two words. The shift is split
	// in two because wordBits equals k's full width on 64-bit platforms.
	if n == 1 && k>>(wordBits-1)>>1 != 0 {
		panic("bigint: addend wider than the declared span")
	}
	var k1 big.Word
	if wordBits == 32 {
		k1 = big.Word(k >> 32)
	}

	sc := newScratch(secAddItch(n))
	defer sc.release()
	span := sc.words[:n]
	copy(span, u.value.Bits())

	var c uint
	for i := 0; i < n; i++ {
		var ki uint
		switch i {
		case 0:
			ki = uint(big.Word(k))
		case 1:
			ki = uint(k1)
		}
		s, ci := bits.Add(uint(span[i]), ki, c)
		span[i] = big.Word(s)
		c = ci
	}
	sc.words[n] = big.Word(c)

	// SetBits aliases its argument, so the result is copied out of the
	// scratch buffer into a fresh slice before release scrubs it. The extra
	// carry word is always present; normalization trims it when zero.
	out := make([]big.Word, n+1)
	copy(out, sc.words)
	u.value.SetBits(out)
	u.bits += uint(c)
}

// Sum folds Add over a non-empty sequence, seeding with a copy of the first
// element so inputs are never mutated. Add's normalization precondition
// applies at every step. An empty sequence has no first element to fold
// from; passing one is a caller error.
func Sum(xs []*UnsignedInteger) *UnsignedInteger {
	if len(xs) == 0 {
		panic("bigint: sum of an empty sequence")
	}
	acc := xs[0].Clone()
	for _, x := range xs[1:] {
		acc.Add(x)
	}
	return acc
}
