package linalg

import (
	"math/big"
	"strings"
)

// Vector is a coordinate vector over Q. Entries are never nil after
// construction through this package.
type Vector []*big.Rat

// NewVector returns the zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// FromInts builds a vector from integer entries. Handy in fixtures.
func FromInts(entries ...int) Vector {
	v := make(Vector, len(entries))
	for i, e := range entries {
		v[i] = big.NewRat(int64(e), 1)
	}

	return v
}

// Clone returns a deep copy. Time: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, e := range v {
		out[i] = new(big.Rat).Set(e)
	}

	return out
}

// IsZero reports whether every entry is zero. Time: O(n).
func (v Vector) IsZero() bool {
	for _, e := range v {
		if e.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact componentwise equality. Vectors of different lengths
// are unequal. Time: O(n).
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}

	return true
}

// AddScaled adds c*w into v in place. Lengths must match (enforced by
// callers; internal helper). Time: O(n).
func (v Vector) AddScaled(c *big.Rat, w Vector) {
	tmp := new(big.Rat)
	for i := range v {
		v[i].Add(v[i], tmp.Mul(c, w[i]))
	}
}

// Scale multiplies v by c in place. Time: O(n).
func (v Vector) Scale(c *big.Rat) {
	for i := range v {
		v[i].Mul(v[i], c)
	}
}

// String renders the vector as "(a, b, ...)" with exact rationals.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.RatString()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
