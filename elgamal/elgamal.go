// Package elgamal implements multiplicatively homomorphic ElGamal encryption
// over the group of quadratic residues modulo a safe prime.
//
// Plaintexts and ciphertext components are group elements. Multiplying two
// ciphertexts componentwise yields a ciphertext of the product of the two
// plaintexts, and raising one to a public scalar yields a ciphertext of the
// plaintext power.
package elgamal

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/privacybydesign/numtheory"
	"github.com/privacybydesign/numtheory/bigint"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
}

// MinGroupSize is the smallest group modulus size accepted, in bits.
const MinGroupSize = 512

// validationRounds is the number of strong probable-prime test rounds spent
// on a caller-supplied group modulus.
const validationRounds = 80

// System describes a safe-prime group: the modulus p, the fixed generator 4
// of the quadratic residue subgroup, and the subgroup order (p-1)/2. All
// secrets live below the order.
type System struct {
	Modulus   *saferith.Modulus
	Generator *saferith.Nat
	Order     *bigint.UnsignedInteger
}

// PublicKey holds an encryption key h = g^sk and the system it belongs to.
type PublicKey struct {
	H      *saferith.Nat
	System *System
}

// SecretKey holds a decryption key and the system it belongs to.
type SecretKey struct {
	SK     *saferith.Nat
	System *System
}

// NewSystem builds a System over a freshly generated safe prime of exactly
// groupSize bits drawn from rand.
func NewSystem(rand io.Reader, groupSize uint) (*System, error) {
	if groupSize < MinGroupSize {
		return nil, errors.Errorf("elgamal: group size %d below the %d-bit minimum", groupSize, MinGroupSize)
	}
	p, err := numtheory.GenerateSafePrime(rand, groupSize)
	if err != nil {
		return nil, err
	}
	Logger.Tracef("built %d-bit safe prime group", groupSize)
	return newSystem(p), nil
}

// SystemFromModulus builds a System over a known safe prime, for example one
// published by another party. The modulus and its half are both put through
// the strong probable-prime test before anything is encrypted under them.
func SystemFromModulus(p *bigint.UnsignedInteger) (*System, error) {
	if p.SizeInBits() < MinGroupSize {
		return nil, errors.Errorf("elgamal: group size %d below the %d-bit minimum", p.SizeInBits(), MinGroupSize)
	}
	if !p.ProbablyPrime(validationRounds) {
		return nil, errors.New("elgamal: group modulus is not prime")
	}
	if !p.Rsh(1).ProbablyPrime(validationRounds) {
		return nil, errors.New("elgamal: group modulus is not a safe prime")
	}
	return newSystem(p), nil
}

// newSystem assumes p is a safe prime. 4 is a square, so it generates the
// subgroup of quadratic residues, which has prime order (p-1)/2.
func newSystem(p *bigint.UnsignedInteger) *System {
	return &System{
		Modulus:   saferith.ModulusFromNat(p.Nat()),
		Generator: new(saferith.Nat).SetUint64(4),
		Order:     p.Rsh(1),
	}
}

// GenerateKeys draws a secret key uniformly below the subgroup order and
// derives the public key from it in constant time.
func (s *System) GenerateKeys(rand io.Reader) (*PublicKey, *SecretKey, error) {
	sk, err := bigint.RandomBelow(rand, s.Order)
	if err != nil {
		return nil, nil, err
	}
	secret := sk.Nat()
	h := new(saferith.Nat).Exp(s.Generator, secret, s.Modulus)

	Logger.Trace("generated key pair")
	return &PublicKey{H: h, System: s}, &SecretKey{SK: secret, System: s}, nil
}

// Encrypt encrypts the group element m under the public key: c1 = g^y,
// c2 = m * h^y, with y an ephemeral secret below the subgroup order. Both
// exponentiations run in constant time.
func (pk *PublicKey) Encrypt(rand io.Reader, m *saferith.Nat) (*Ciphertext, error) {
	y, err := bigint.RandomBelow(rand, pk.System.Order)
	if err != nil {
		return nil, err
	}
	ephemeral := y.Nat()

	c1 := new(saferith.Nat).Exp(pk.System.Generator, ephemeral, pk.System.Modulus)
	c2 := new(saferith.Nat).Exp(pk.H, ephemeral, pk.System.Modulus)
	c2.ModMul(c2, m, pk.System.Modulus)

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt recovers the plaintext as c2 * (c1^sk)^-1. It errors when c1 has
// no inverse modulo the group modulus; honestly produced ciphertexts always
// do. The secret exponentiation and the inversion run in constant time.
func (sk *SecretKey) Decrypt(ct *Ciphertext) (*saferith.Nat, error) {
	if ct.C1.IsUnit(sk.System.Modulus) != 1 {
		return nil, errors.New("elgamal: ciphertext component is not invertible")
	}
	shared := new(saferith.Nat).Exp(ct.C1, sk.SK, sk.System.Modulus)
	inv := new(saferith.Nat).ModInverse(shared, sk.System.Modulus)
	return new(saferith.Nat).ModMul(ct.C2, inv, sk.System.Modulus), nil
}
