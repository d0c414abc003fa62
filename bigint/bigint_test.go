package bigint

import (
	"testing"

	"github.com/privacybydesign/numtheory/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCPRNG(t testing.TB, label string) *common.CPRNG {
	t.Helper()
	var seed [32]byte
	copy(seed[:], label)
	rng, err := common.NewCPRNG(&seed)
	require.NoError(t, err)
	return rng
}

func fromString(t *testing.T, s string, numBits uint) *UnsignedInteger {
	t.Helper()
	u, err := FromString(s, 10, numBits)
	require.NoError(t, err)
	return u
}

func TestFromString(t *testing.T) {
	u := fromString(t, "5378239758327583290580573280735", 103)
	assert.Equal(t, uint(103), u.SizeInBits())
	assert.Equal(t, uint(103), u.BitLen())
	assert.Equal(t, "5378239758327583290580573280735", u.String())

	// Headroom above the tight length is legal; the declared size wins.
	u = fromString(t, "255", 64)
	assert.Equal(t, uint(64), u.SizeInBits())
	assert.Equal(t, uint(8), u.BitLen())
}

func TestFromStringRejectsOversizedValue(t *testing.T) {
	_, err := FromString("256", 10, 8)
	assert.Error(t, err)

	_, err = FromString("255", 10, 8)
	assert.NoError(t, err)
}

func TestFromStringRejectsGarbage(t *testing.T) {
	_, err := FromString("0x12", 10, 64)
	assert.Error(t, err)

	_, err = FromString("-5", 10, 64)
	assert.Error(t, err)
}

func TestFromUint64(t *testing.T) {
	u := FromUint64(14, 8)
	assert.Equal(t, uint64(14), u.Uint64())
	assert.Equal(t, uint(8), u.SizeInBits())

	assert.Panics(t, func() { FromUint64(256, 8) })
}

func TestRandomHasExactBitLength(t *testing.T) {
	rng := testCPRNG(t, "random-length-seed")
	for _, numBits := range []uint{1, 7, 8, 9, 63, 64, 65, 103, 256, 1024} {
		u, err := Random(rng, numBits)
		require.NoError(t, err)
		assert.Equal(t, numBits, u.SizeInBits())
		assert.Equal(t, numBits, u.BitLen(), "size %d", numBits)
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a, err := Random(testCPRNG(t, "fixed-seed"), 256)
	require.NoError(t, err)
	b, err := Random(testCPRNG(t, "fixed-seed"), 256)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := Random(testCPRNG(t, "other-seed"), 256)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestRandomBelow(t *testing.T) {
	rng := testCPRNG(t, "random-below-seed")
	bound := FromUint64(1000, 64)
	for i := 0; i < 100; i++ {
		u, err := RandomBelow(rng, bound)
		require.NoError(t, err)
		assert.Less(t, u.Uint64(), uint64(1000))
		assert.Equal(t, uint(64), u.SizeInBits())
	}
}

func TestPad(t *testing.T) {
	u := FromUint64(255, 8)
	u.Pad(32)
	assert.Equal(t, uint(32), u.SizeInBits())
	assert.Equal(t, uint(8), u.BitLen())

	assert.Panics(t, func() { u.Pad(16) })
}

func TestBitAccess(t *testing.T) {
	u := FromUint64(0b101, 8)
	assert.Equal(t, uint(1), u.Bit(0))
	assert.Equal(t, uint(0), u.Bit(1))
	assert.Equal(t, uint(1), u.Bit(2))

	u.SetBit(7)
	assert.Equal(t, uint64(0b10000101), u.Uint64())

	assert.Panics(t, func() { u.Bit(8) })
	assert.Panics(t, func() { u.SetBit(8) })
}

func TestBytesArePaddedToDeclaredSize(t *testing.T) {
	u := FromUint64(255, 64)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 255}, u.Bytes())

	u = FromUint64(5, 11)
	assert.Equal(t, []byte{0, 5}, u.Bytes())
}

func TestNatAnnouncesDeclaredSize(t *testing.T) {
	u := fromString(t, "5378239758327583290580573280735", 112)
	n := u.Nat()
	assert.Equal(t, 112, n.AnnouncedLen())
	assert.Equal(t, u.Big().String(), n.Big().String())
}

func TestClone(t *testing.T) {
	u := FromUint64(42, 16)
	c := u.Clone()
	c.SecureAddUint64(1)
	assert.Equal(t, uint64(42), u.Uint64())
	assert.Equal(t, uint64(43), c.Uint64())
}

func TestZeroValueIsUsable(t *testing.T) {
	var u UnsignedInteger
	assert.Equal(t, uint(0), u.SizeInBits())
	assert.Equal(t, "0", u.String())
	assert.Empty(t, u.Bytes())
}
