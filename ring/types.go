// Package ring: core types and sentinel errors.
package ring

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for ring operations.
var (
	// ErrNoGenerators indicates a ring was requested with no variables.
	ErrNoGenerators = errors.New("ring: ring must have at least one generator")
	// ErrExponentLength indicates an exponent vector of the wrong length or
	// with a negative entry.
	ErrExponentLength = errors.New("ring: exponent vector does not fit the ring")
	// ErrBadShape indicates negative matrix dimensions.
	ErrBadShape = errors.New("ring: invalid matrix shape")
	// ErrOutOfRange indicates a matrix index outside valid bounds.
	ErrOutOfRange = errors.New("ring: index out of range")
	// ErrDimensionMismatch indicates incompatible shapes or mixed rings.
	ErrDimensionMismatch = errors.New("ring: dimension mismatch")
	// ErrInhomogeneous indicates a differential entry whose degree disagrees
	// with the grading forced by the shift lists.
	ErrInhomogeneous = errors.New("ring: differential entry not homogeneous of expected degree")
	// ErrKoszulInput indicates an unusable Koszul generator list.
	ErrKoszulInput = errors.New("ring: koszul generators must be nonzero homogeneous polynomials")
)

// Ring is the homogeneous coordinate ring Q[x0..xr] of a projective space.
// It is immutable once built and holds no element storage; polynomials
// reference it only through the generator count.
type Ring struct {
	vars []string
}

// NewRing builds a polynomial ring over Q with the given variable names.
// Returns ErrNoGenerators when no names are supplied.
func NewRing(vars ...string) (*Ring, error) {
	if len(vars) == 0 {
		return nil, ErrNoGenerators
	}
	vs := make([]string, len(vars))
	copy(vs, vars)

	return &Ring{vars: vs}, nil
}

// CoordinateRing returns Q[x0..xr], the coordinate ring of P^r.
// Panics when r < 0 (programmer error, not a user-facing condition).
func CoordinateRing(r int) *Ring {
	if r < 0 {
		panic("ring: negative projective dimension")
	}
	vars := make([]string, r+1)
	for i := range vars {
		vars[i] = fmt.Sprintf("x%d", i)
	}
	R, _ := NewRing(vars...)

	return R
}

// NGens returns the number of ring generators.
func (R *Ring) NGens() int { return len(R.vars) }

// VarName returns the name of the i-th generator.
// Panics on an out-of-range index (programmer error).
func (R *Ring) VarName(i int) string { return R.vars[i] }

// String renders the ring as "QQ[x0, x1, ...]".
func (R *Ring) String() string {
	return "QQ[" + strings.Join(R.vars, ", ") + "]"
}
