package bigint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	// Declared size wider than the tight bit length must survive the trip.
	u := fromString(t, "5378239758327583290580573280735", 112)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"size_in_bits":112`)
	assert.Contains(t, string(data), `"magnitude":`)

	var back UnsignedInteger
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, u.Equal(&back))
	assert.Equal(t, uint(112), back.SizeInBits())
}

func TestJSONRoundTripZero(t *testing.T) {
	u := FromUint64(0, 16)

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var back UnsignedInteger
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, u.Equal(&back))
}

func TestUnmarshalJSONRejectsOversizedMagnitude(t *testing.T) {
	// 0xff does not fit in 7 declared bits.
	var u UnsignedInteger
	err := u.UnmarshalJSON([]byte(`{"size_in_bits":7,"magnitude":"/w=="}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds declared size")
}

func TestCBORRoundTrip(t *testing.T) {
	u := fromString(t, "5378239758327583290580573280735", 103)

	data, err := u.MarshalCBOR()
	require.NoError(t, err)

	// Deterministic encoding: marshalling twice yields identical bytes.
	again, err := u.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	var back UnsignedInteger
	require.NoError(t, back.UnmarshalCBOR(data))
	assert.True(t, u.Equal(&back))
}

func TestUnmarshalCBORRejectsOversizedMagnitude(t *testing.T) {
	// {1: 7, 2: h'ff'}: a one-byte magnitude wider than 7 declared bits.
	raw := []byte{0xa2, 0x01, 0x07, 0x02, 0x41, 0xff}
	var u UnsignedInteger
	err := u.UnmarshalCBOR(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds declared size")
}

func TestUnmarshalCBORRejectsIndefiniteLength(t *testing.T) {
	// 0xbf opens an indefinite-length map, which the decoding mode forbids.
	raw := []byte{0xbf, 0x01, 0x07, 0x02, 0x41, 0x03, 0xff}
	var u UnsignedInteger
	assert.Error(t, u.UnmarshalCBOR(raw))
}
