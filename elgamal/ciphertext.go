package elgamal

import (
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/privacybydesign/numtheory/cbor"
)

// Ciphertext is an ElGamal ciphertext (c1, c2) = (g^y, m * h^y).
type Ciphertext struct {
	C1 *saferith.Nat
	C2 *saferith.Nat
}

// Mul returns the componentwise product of the two ciphertexts, which
// decrypts to the product of the two plaintexts.
func (ct *Ciphertext) Mul(other *Ciphertext, sys *System) *Ciphertext {
	return &Ciphertext{
		C1: new(saferith.Nat).ModMul(ct.C1, other.C1, sys.Modulus),
		C2: new(saferith.Nat).ModMul(ct.C2, other.C2, sys.Modulus),
	}
}

// Pow raises both components to k, yielding a ciphertext of the plaintext
// power. The scalar is public, so the exponentiations take the variable-time
// path.
func (ct *Ciphertext) Pow(k *big.Int, sys *System) *Ciphertext {
	p := sys.Modulus.Nat().Big()
	size := sys.Modulus.BitLen()

	c1 := new(big.Int).Exp(ct.C1.Big(), k, p)
	c2 := new(big.Int).Exp(ct.C2.Big(), k, p)
	return &Ciphertext{
		C1: new(saferith.Nat).SetBig(c1, size),
		C2: new(saferith.Nat).SetBig(c2, size),
	}
}

// ciphertextWire is the serialized form: both components as big-endian byte
// strings, padded to their announced lengths.
type ciphertextWire struct {
	C1 []byte `cbor:"1,keyasint"`
	C2 []byte `cbor:"2,keyasint"`
}

// MarshalCBOR encodes the ciphertext deterministically.
func (ct *Ciphertext) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(ciphertextWire{C1: ct.C1.Bytes(), C2: ct.C2.Bytes()})
}

// UnmarshalCBOR decodes the MarshalCBOR form.
func (ct *Ciphertext) UnmarshalCBOR(b []byte) error {
	var w ciphertextWire
	if err := cbor.Unmarshal(b, &w); err != nil {
		return err
	}
	ct.C1 = new(saferith.Nat).SetBytes(w.C1)
	ct.C2 = new(saferith.Nat).SetBytes(w.C2)
	return nil
}
