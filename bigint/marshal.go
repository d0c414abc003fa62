package bigint

import (
	"encoding/json"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/numtheory/cbor"
)

/// wire is the serialized form. The declared size travels with the magnitude:
// without it the receiving side cannot reconstruct consumption, and a bare
// byte string would silently re-measure.
type wire struct {
	SizeInBits uint   `json:"size_in_bits" cbor:"1,keyasint"`
	Magnitude  []byte `json:"magnitude" cbor:"2,keyasint"`
}

func (u *UnsignedInteger) toWire() wire {
	return wire{SizeInBits: u.bits, Magnitude: u.Bytes()}
}

func (u *UnsignedInteger) fromWire(w wire) error {
	var v UnsignedInteger
	v.bits = w.SizeInBits
	v.value.SetBytes(w.Magnitude)
	if uint(v.value.BitLen()) > v.bits {
		return errors.Errorf("bigint: encoded value of %d bits exceeds declared size of %d bits", v.value.BitLen(), v.bits)
	}
	*u = v
	return nil
}

// MarshalJSON encodes the value as
// {"size_in_bits": N, "magnitude": "<base64 of the big-endian bytes>"}.
func (u *UnsignedInteger) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.toWire())
}

// UnmarshalJSON decodes the MarshalJSON form, rejecting encodings whose
// magnitude does not fit the declared size.
func (u *UnsignedInteger) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	return u.fromWire(w)
}

// MarshalCBOR encodes the value deterministically.
func (u *UnsignedInteger) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(u.toWire())
}

// UnmarshalCBOR decodes the MarshalCBOR form with the same declared-size
// check as UnmarshalJSON.
func (u *UnsignedInteger) UnmarshalCBOR(b []byte) error {
	var w wire
	if err := cbor.Unmarshal(b, &w); err != nil {
		return err
	}
	return u.fromWire(w)
}
