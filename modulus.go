package numtheory

import (
	"io"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/numtheory/bigint"
)

// RSAModulus holds an RSA modulus together with its factorization and the
// Carmichael function of the modulus.
type RSAModulus struct {
	P      *bigint.UnsignedInteger
	Q      *bigint.UnsignedInteger
	N      *bigint.UnsignedInteger
	Lambda *bigint.UnsignedInteger
}

// GenerateRSAModulus draws two safe primes of numBits/2 bits sequentially
// from rand and assembles n = p*q along with lambda(n) = lcm(p-1, q-1).
// The declared size of N follows the product rule, 2*(numBits/2); its tight
// bit length lands on numBits or numBits-1.
//
// The two primes are drawn independently and never compared: a collision
// between safe primes of any cryptographic size is unreachable, and an
// equality check would branch on secrets.
func GenerateRSAModulus(rand io.Reader, numBits uint) (*RSAModulus, error) {
	if numBits < 6 {
		return nil, errors.New("numtheory: modulus size must be at least 6-bit")
	}
	half := numBits / 2

	p, err := GenerateSafePrime(rand, half)
	if err != nil {
		return nil, err
	}
	q, err := GenerateSafePrime(rand, half)
	if err != nil {
		return nil, err
	}

	one := bigint.FromUint64(1, 1)
	lambda := p.Sub(one).Lcm(q.Sub(one))
	n := p.Mul(q)

	Logger.Debugf("assembled %d-bit modulus from two %d-bit safe primes", n.SizeInBits(), half)

	return &RSAModulus{P: p, Q: q, N: n, Lambda: lambda}, nil
}
