package bigint

import (
	"math/big"
	"math/bits"
)

// SignedInteger is the signed result of subtracting sized unsigned integers:
// a magnitude plus a sign. It exists for the few intermediates that can dip
// below zero (modulus assembly works on p-1 and q-1); it is not a general
// signed arithmetic type.
type SignedInteger struct {
	magnitude UnsignedInteger
	negative  bool
}

// IsNegative reports the sign. Zero is never negative.
func (s *SignedInteger) IsNegative() bool {
	return s.negative
}

// Abs returns a copy of the magnitude with its declared size.
func (s *SignedInteger) Abs() *UnsignedInteger {
	return s.magnitude.Clone()
}

func (s *SignedInteger) String() string {
	if s.negative {
		return "-" + s.magnitude.String()
	}
	return s.magnitude.String()
}

// Lcm returns the least common multiple of the two magnitudes, discarding
// signs.
func (s *SignedInteger) Lcm(rhs *SignedInteger) *UnsignedInteger {
	return s.magnitude.Lcm(&rhs.magnitude)
}

// Sub returns u - rhs as a signed value, since the difference may dip below
// zero. The magnitude's declared size is max(u.bits, rhs.bits).
func (u *UnsignedInteger) Sub(rhs *UnsignedInteger) *SignedInteger {
	numBits := u.bits
	if rhs.bits > numBits {
		numBits = rhs.bits
	}
	s := &SignedInteger{magnitude: UnsignedInteger{bits: numBits}}
	s.magnitude.value.Sub(&u.value, &rhs.value)
	if s.magnitude.value.Sign() < 0 {
		s.negative = true
		s.magnitude.value.Neg(&s.magnitude.value)
	}
	return s
}

// Mul returns u * rhs as a new value. The declared size is the sum of the
// operand sizes, the span a product always fits in.
func (u *UnsignedInteger) Mul(rhs *UnsignedInteger) *UnsignedInteger {
	r := &UnsignedInteger{bits: u.bits + rhs.bits}
	r.value.Mul(&u.value, &rhs.value)
	return r
}

// Rsh returns u >> n as a new value with the declared size reduced by n.
func (u *UnsignedInteger) Rsh(n uint) *UnsignedInteger {
	if n > u.bits {
		panic("bigint: shift amount exceeds declared size")
	}
	r := &UnsignedInteger{bits: u.bits - n}
	r.value.Rsh(&u.value, n)
	return r
}

// ModUint64 returns the value modulo m. This is the variable-time reduction
// the sieve leans on: a word-by-word remainder fold, high to low. It panics
// when m is zero.
func (u *UnsignedInteger) ModUint64(m uint64) uint64 {
	if m == 0 {
		panic("bigint: modulus is zero")
	}
	if uint64(uint(m)) != m {
		// 32-bit platform with a modulus wider than a word.
		var mm, r big.Int
		mm.SetUint64(m)
		r.Mod(&u.value, &mm)
		return r.Uint64()
	}
	mw := uint(m)
	w := u.value.Bits()
	var r uint
	for i := len(w) - 1; i >= 0; i-- {
		r = bits.Rem(r, uint(w[i]), mw)
	}
	return uint64(r)
}

// Gcd returns the greatest common divisor. Operands are expected positive.
// The declared size is min(u.bits, rhs.bits), which always bounds the
// divisor.
func (u *UnsignedInteger) Gcd(rhs *UnsignedInteger) *UnsignedInteger {
	numBits := u.bits
	if rhs.bits < numBits {
		numBits = rhs.bits
	}
	r := &UnsignedInteger{bits: numBits}
	r.value.GCD(nil, nil, &u.value, &rhs.value)
	return r
}

// Lcm returns the least common multiple. The declared size of the result is
// its tight bit length: an lcm sits anywhere between max(a, b) and a*b, so
// no consumption rule is sharper than measuring.
func (u *UnsignedInteger) Lcm(rhs *UnsignedInteger) *UnsignedInteger {
	r := &UnsignedInteger{}
	if u.value.Sign() == 0 || rhs.value.Sign() == 0 {
		return r
	}
	var g, prod big.Int
	g.GCD(nil, nil, &u.value, &rhs.value)
	prod.Mul(&u.value, &rhs.value)
	r.value.Div(&prod, &g)
	r.bits = uint(r.value.BitLen())
	return r
}

// Cmp compares the values, returning -1, 0 or 1. Operands must arrive with
// equal declared sizes; comparing across sizes is a normalization bug at the
// caller.
func (u *UnsignedInteger) Cmp(rhs *UnsignedInteger) int {
	if u.bits != rhs.bits {
		panic("bigint: comparing values of different declared sizes")
	}
	return u.value.Cmp(&rhs.value)
}

// Equal reports whether both the value and the declared size match.
func (u *UnsignedInteger) Equal(rhs *UnsignedInteger) bool {
	return u.bits == rhs.bits && u.value.Cmp(&rhs.value) == 0
}
