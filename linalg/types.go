// Package linalg: core types and sentinel errors.
package linalg

import (
	"errors"
	"fmt"
)

// Sentinel errors for linalg operations.
var (
	// ErrBadShape indicates a negative dimension or an inconsistent row set.
	ErrBadShape = errors.New("linalg: invalid shape")
	// ErrDimensionMismatch indicates a vector or map that does not fit the
	// relevant space.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
	// ErrNotSubspace indicates a quotient V/W where W is not contained in V.
	ErrNotSubspace = errors.New("linalg: not a subspace")
	// ErrNilMap indicates a nil *Map receiver or argument.
	ErrNilMap = errors.New("linalg: nil map")
)

// Space is an abstract finite-dimensional coordinate space over Q.
// Two spaces are interchangeable iff their dimensions agree; Space carries
// no basis data beyond the dimension.
type Space struct {
	dim int
}

// NewSpace builds a dim-dimensional space. Returns ErrBadShape for dim < 0.
func NewSpace(dim int) (*Space, error) {
	if dim < 0 {
		return nil, fmt.Errorf("dimension %d: %w", dim, ErrBadShape)
	}

	return &Space{dim: dim}, nil
}

// Dim returns the dimension. Time: O(1).
func (s *Space) Dim() int { return s.dim }

// String renders the space as "QQ^n".
func (s *Space) String() string { return fmt.Sprintf("QQ^%d", s.dim) }
