package numtheory

import (
	"sort"

	"github.com/go-errors/errors"
)

type (
	// SystemParameters holds the sizes an application feeds the engines for a
	// chosen security level.
	SystemParameters struct {
		BaseParameters
		DerivedParameters
	}

	// BaseParameters holds the base sizes: Ln for an RSA modulus, Lgroup for
	// a safe-prime group modulus.
	BaseParameters struct {
		Ln     uint
		Lgroup uint
	}

	// DerivedParameters holds sizes that can be derived from the base sizes
	// (BaseParameters): Lp for each safe prime factor of an Ln-bit modulus,
	// Lorder for the order of the quadratic residue subgroup of an
	// Lgroup-bit group.
	DerivedParameters struct {
		Lp     uint
		Lorder uint
	}
)

// defaultBaseParameters holds per keylength the base parameters.
var defaultBaseParameters = map[int]BaseParameters{
	1024: {
		Ln:     1024,
		Lgroup: 1024,
	},
	2048: {
		Ln:     2048,
		Lgroup: 2048,
	},
	4096: {
		Ln:     4096,
		Lgroup: 4096,
	},
}

// MakeDerivedParameters computes the derived system parameters
func MakeDerivedParameters(base BaseParameters) DerivedParameters {
	return DerivedParameters{
		Lp:     base.Ln / 2,
		Lorder: base.Lgroup - 1,
	}
}

// DefaultSystemParameters holds per keylength the default parameters as are
// currently in use at the moment. This might (and probably will) change in the
// future.
var DefaultSystemParameters = map[int]*SystemParameters{
	1024: {defaultBaseParameters[1024], MakeDerivedParameters(defaultBaseParameters[1024])},
	2048: {defaultBaseParameters[2048], MakeDerivedParameters(defaultBaseParameters[2048])},
	4096: {defaultBaseParameters[4096], MakeDerivedParameters(defaultBaseParameters[4096])},
}

// getAvailableKeyLengths returns the keylengths for the provided map of system
// parameters.
func getAvailableKeyLengths(sysParamsMap map[int]*SystemParameters) []int {
	lengths := make([]int, 0, len(sysParamsMap))
	for k := range sysParamsMap {
		lengths = append(lengths, k)
	}
	sort.Ints(lengths)
	return lengths
}

// DefaultKeyLengths is a slice of integers holding the keylengths for which
// system parameters are available.
var DefaultKeyLengths = getAvailableKeyLengths(DefaultSystemParameters)

// DefaultParams returns the default system parameters for the given
// keylength.
func DefaultParams(keyLength int) (*SystemParameters, error) {
	params, ok := DefaultSystemParameters[keyLength]
	if !ok {
		return nil, errors.Errorf("numtheory: no default parameters for %d-bit keys", keyLength)
	}
	return params, nil
}

// ParamSize computes the size of a parameter in bytes given the size in bits.
func ParamSize(a int) int {
	return (a + 8 - 1) / 8
}
