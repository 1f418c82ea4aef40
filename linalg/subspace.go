package linalg

import (
	"fmt"
	"math/big"
)

// Subspace is a subspace of a coordinate space, presented by a reduced
// row echelon basis. Immutable after construction; the echelon form makes
// membership tests a single elimination pass and the basis reproducible.
type Subspace struct {
	ambient *Space
	basis   []Vector
}

// NewSubspace spans the given generators inside ambient. Generators are
// echelonized; linear dependence is fine. Returns ErrDimensionMismatch when
// a generator does not live in ambient.
func NewSubspace(ambient *Space, gens []Vector) (*Subspace, error) {
	if ambient == nil {
		return nil, fmt.Errorf("nil ambient space: %w", ErrBadShape)
	}
	for i, g := range gens {
		if len(g) != ambient.Dim() {
			return nil, fmt.Errorf("generator %d has length %d, want %d: %w", i, len(g), ambient.Dim(), ErrDimensionMismatch)
		}
	}
	basis, _ := echelon(gens, ambient.Dim())

	return &Subspace{ambient: ambient, basis: basis}, nil
}

// FullSubspace returns the whole space as a subspace of itself.
func FullSubspace(ambient *Space) *Subspace {
	basis := make([]Vector, ambient.Dim())
	for i := range basis {
		basis[i] = NewVector(ambient.Dim())
		basis[i][i].SetInt64(1)
	}

	return &Subspace{ambient: ambient, basis: basis}
}

// Ambient returns the ambient space.
func (s *Subspace) Ambient() *Space { return s.ambient }

// Dim returns the subspace dimension. Time: O(1).
func (s *Subspace) Dim() int { return len(s.basis) }

// Basis returns a deep copy of the echelon basis.
func (s *Subspace) Basis() []Vector {
	out := make([]Vector, len(s.basis))
	for i, b := range s.basis {
		out[i] = b.Clone()
	}

	return out
}

// Contains reports whether v lies in the subspace, by reducing v against
// the echelon basis. Returns ErrDimensionMismatch when v does not live in
// the ambient space. Time: O(dim(s)·dim(ambient)).
func (s *Subspace) Contains(v Vector) (bool, error) {
	if len(v) != s.ambient.Dim() {
		return false, fmt.Errorf("vector of length %d in %s: %w", len(v), s.ambient, ErrDimensionMismatch)
	}
	res := v.Clone()
	tmp := new(big.Rat)
	for _, b := range s.basis {
		// pivot column of b is its first nonzero entry (pivot value 1)
		pivot := -1
		for j, e := range b {
			if e.Sign() != 0 {
				pivot = j
				break
			}
		}
		if pivot < 0 || res[pivot].Sign() == 0 {
			continue
		}
		c := tmp.Neg(res[pivot])
		res.AddScaled(c, b)
	}

	return res.IsZero(), nil
}

// ContainsSubspace reports whether w ⊆ s.
func (s *Subspace) ContainsSubspace(w *Subspace) (bool, error) {
	if w.ambient.Dim() != s.ambient.Dim() {
		return false, fmt.Errorf("ambient %s vs %s: %w", w.ambient, s.ambient, ErrDimensionMismatch)
	}
	for _, b := range w.basis {
		ok, err := s.Contains(b)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// Quotient returns s/w. Requires w ⊆ s; returns ErrNotSubspace otherwise.
func (s *Subspace) Quotient(w *Subspace) (*QuotientSpace, error) {
	ok, err := s.ContainsSubspace(w)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("quotient by non-contained space: %w", ErrNotSubspace)
	}

	return &QuotientSpace{super: s, sub: w, dim: s.Dim() - w.Dim()}, nil
}

// QuotientSpace is V/W for subspaces W ⊆ V of a common ambient space.
type QuotientSpace struct {
	super *Subspace
	sub   *Subspace
	dim   int
}

// Dim returns dim V - dim W. Time: O(1).
func (q *QuotientSpace) Dim() int { return q.dim }

// Super returns the numerator V.
func (q *QuotientSpace) Super() *Subspace { return q.super }

// Sub returns the denominator W.
func (q *QuotientSpace) Sub() *Subspace { return q.sub }

// String renders the quotient as "QQ^dim (quotient)".
func (q *QuotientSpace) String() string {
	return fmt.Sprintf("QQ^%d (quotient of %d-dim by %d-dim)", q.dim, q.super.Dim(), q.sub.Dim())
}
