// Package bigint implements arbitrary-precision unsigned integers that carry
// an explicit size in bits alongside their value.
//
// The declared size is an upper bound on the tight bit length of the value.
// It is tracked through every operation by rule instead of being re-measured,
// so it reflects how much space the value consumes inside fixed-size
// cryptographic material rather than how large the value happens to be.
package bigint

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"
	"math/bits"

	"github.com/cronokirby/saferith"
	"github.com/go-errors/errors"
)

// wordBits is the width of a big.Word. Word-span computations throughout the
// package are in terms of this unit.
const wordBits = bits.UintSize

// UnsignedInteger is an arbitrary-precision unsigned integer with an
// explicitly tracked size in bits. Two instances are interchangeable only
// when both the value and the declared size match.
//
// The zero value is 0 with a declared size of 0 bits.
type UnsignedInteger struct {
	value big.Int
	bits  uint
}

// wordsFor returns the number of words spanned by numBits bits.
func wordsFor(numBits uint) int {
	return int((numBits + wordBits - 1) / wordBits)
}

// FromString parses s in the given base as a value of numBits declared bits.
// The declared size is checked, never inferred: a value whose tight bit
// length exceeds numBits is a security-parameter mismatch and is rejected
// rather than silently widened.
func FromString(s string, base int, numBits uint) (*UnsignedInteger, error) {
	var v big.Int
	if _, ok := v.SetString(s, base); !ok {
		return nil, errors.Errorf("bigint: cannot parse %q in base %d", s, base)
	}
	if v.Sign() < 0 {
		return nil, errors.New("bigint: negative values are not supported")
	}
	if uint(v.BitLen()) > numBits {
		return nil, errors.Errorf("bigint: value of %d bits exceeds declared size of %d bits", v.BitLen(), numBits)
	}
	u := &UnsignedInteger{bits: numBits}
	u.value.Set(&v)
	return u, nil
}

// FromUint64 returns v with the given declared size. It panics if v does not
// fit in numBits bits.
func FromUint64(v uint64, numBits uint) *UnsignedInteger {
	if uint(bits.Len64(v)) > numBits {
		panic("bigint: uint64 value wider than declared size")
	}
	u := &UnsignedInteger{bits: numBits}
	u.value.SetUint64(v)
	return u
}

// Random draws a uniform value of exactly numBits bits from rand: the bytes
// above the declared size are masked off and the top bit is forced, so the
// tight bit length always equals the declared one.
func Random(rand io.Reader, numBits uint) (*UnsignedInteger, error) {
	if numBits == 0 {
		return nil, errors.New("bigint: random size must be at least 1 bit")
	}
	buf := make([]byte, (numBits+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, errors.WrapPrefix(err, "bigint: reading randomness", 0)
	}
	if rem := numBits % 8; rem != 0 {
		buf[0] &= byte(1<<rem - 1)
	}
	buf[0] |= 1 << ((numBits - 1) % 8)
	u := &UnsignedInteger{bits: numBits}
	u.value.SetBytes(buf)
	return u, nil
}

// RandomBelow draws a uniform value in [0, bound) from rand. The result
// carries the bound's declared size.
func RandomBelow(rand io.Reader, bound *UnsignedInteger) (*UnsignedInteger, error) {
	v, err := cryptorand.Int(rand, &bound.value)
	if err != nil {
		return nil, errors.WrapPrefix(err, "bigint: reading randomness", 0)
	}
	u := &UnsignedInteger{bits: bound.bits}
	u.value.Set(v)
	return u, nil
}

// Clone returns a deep copy with the same declared size.
func (u *UnsignedInteger) Clone() *UnsignedInteger {
	c := &UnsignedInteger{bits: u.bits}
	c.value.Set(&u.value)
	return c
}

// SizeInBits returns the declared size.
func (u *UnsignedInteger) SizeInBits() uint {
	return u.bits
}

// BitLen returns the tight bit length of the value. It is at most
// SizeInBits.
func (u *UnsignedInteger) BitLen() uint {
	return uint(u.value.BitLen())
}

// Pad grows the declared size to numBits. Shrinking is not possible: the
// declared size is consumption already promised to callers.
func (u *UnsignedInteger) Pad(numBits uint) {
	if numBits < u.bits {
		panic("bigint: cannot shrink declared size")
	}
	u.bits = numBits
}

// Bit returns bit i of the value. Bits at or above the declared size do not
// exist; asking for one is a caller bug.
func (u *UnsignedInteger) Bit(i uint) uint {
	if i >= u.bits {
		panic("bigint: bit index out of declared range")
	}
	return u.value.Bit(int(i))
}

// SetBit forces bit i of the value to 1.
func (u *UnsignedInteger) SetBit(i uint) {
	if i >= u.bits {
		panic("bigint: bit index out of declared range")
	}
	u.value.SetBit(&u.value, int(i), 1)
}

// ProbablyPrime reports whether the value passes n rounds of the strong
// probable-prime test (Miller-Rabin with pseudorandom bases, plus a
// Baillie-PSW round).
func (u *UnsignedInteger) ProbablyPrime(n int) bool {
	return u.value.ProbablyPrime(n)
}

// String returns the value in base 10, without the declared size.
func (u *UnsignedInteger) String() string {
	return u.value.String()
}

// Uint64 returns the low 64 bits of the value.
func (u *UnsignedInteger) Uint64() uint64 {
	return u.value.Uint64()
}

// Big returns the value as a fresh "math/big".Int, dropping the declared
// size.
func (u *UnsignedInteger) Big() *big.Int {
	return new(big.Int).Set(&u.value)
}

// Bytes returns the value in big-endian form, zero-padded to the full
// declared size.
func (u *UnsignedInteger) Bytes() []byte {
	buf := make([]byte, (u.bits+7)/8)
	u.value.FillBytes(buf)
	return buf
}

// Nat returns the value as a constant-time natural whose announced length is
// the declared size.
func (u *UnsignedInteger) Nat() *saferith.Nat {
	return new(saferith.Nat).SetBytes(u.Bytes()).Resize(int(u.bits))
}
