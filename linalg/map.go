package linalg

import "fmt"

// Map is a linear map domain -> codomain over Q, stored right-acting:
// rows[i] is the image of the domain's i-th basis vector, and the map
// applies as v · M. Maps are immutable; the rank is computed lazily,
// at most once.
type Map struct {
	domain   *Space
	codomain *Space
	rows     []Vector

	rank     int
	haveRank bool
}

// NewMap builds a map from the explicit images of the domain basis vectors.
// len(rows) must equal domain.Dim() and each row must have codomain.Dim()
// entries; rows are cloned. Returns ErrBadShape or ErrDimensionMismatch.
func NewMap(domain, codomain *Space, rows []Vector) (*Map, error) {
	if domain == nil || codomain == nil {
		return nil, fmt.Errorf("nil space: %w", ErrBadShape)
	}
	if len(rows) != domain.Dim() {
		return nil, fmt.Errorf("%d rows for %d-dim domain: %w", len(rows), domain.Dim(), ErrBadShape)
	}
	rc := make([]Vector, len(rows))
	for i, r := range rows {
		if len(r) != codomain.Dim() {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", i, len(r), codomain.Dim(), ErrDimensionMismatch)
		}
		rc[i] = r.Clone()
	}

	return &Map{domain: domain, codomain: codomain, rows: rc}, nil
}

// ZeroMap returns the zero map between the given spaces.
func ZeroMap(domain, codomain *Space) *Map {
	rows := make([]Vector, domain.Dim())
	for i := range rows {
		rows[i] = NewVector(codomain.Dim())
	}
	m, _ := NewMap(domain, codomain, rows)

	return m
}

// Domain returns the domain space.
func (f *Map) Domain() *Space { return f.domain }

// Codomain returns the codomain space.
func (f *Map) Codomain() *Space { return f.codomain }

// Row returns a copy of the image of the i-th domain basis vector.
// Panics on an out-of-range index (programmer error).
func (f *Map) Row(i int) Vector { return f.rows[i].Clone() }

// Apply evaluates v · M. Returns ErrDimensionMismatch when v does not live
// in the domain. Time: O(dim(domain)·dim(codomain)).
func (f *Map) Apply(v Vector) (Vector, error) {
	if len(v) != f.domain.Dim() {
		return nil, fmt.Errorf("vector of length %d in %s: %w", len(v), f.domain, ErrDimensionMismatch)
	}
	out := NewVector(f.codomain.Dim())
	for i, c := range v {
		if c.Sign() == 0 {
			continue
		}
		out.AddScaled(c, f.rows[i])
	}

	return out, nil
}

// Rank returns the rank, computed by elimination on first use and cached.
func (f *Map) Rank() int {
	if !f.haveRank {
		basis, _ := echelon(f.rows, f.codomain.Dim())
		f.rank = len(basis)
		f.haveRank = true
	}

	return f.rank
}

// Kernel returns {v : v·M = 0} as a subspace of the domain.
func (f *Map) Kernel() *Subspace {
	basis := leftKernel(f.rows, f.codomain.Dim())

	return &Subspace{ambient: f.domain, basis: basis}
}

// Image returns the span of the rows as a subspace of the codomain.
func (f *Map) Image() *Subspace {
	basis, _ := echelon(f.rows, f.codomain.Dim())

	return &Subspace{ambient: f.codomain, basis: basis}
}

// IsZero reports whether every row vanishes.
func (f *Map) IsZero() bool {
	for _, r := range f.rows {
		if !r.IsZero() {
			return false
		}
	}

	return true
}

// Compose returns f∘g, the map applying g first: (f∘g)(v) = (v·G)·F.
// g's codomain must equal f's domain. Returns ErrNilMap or
// ErrDimensionMismatch.
func (f *Map) Compose(g *Map) (*Map, error) {
	if f == nil || g == nil {
		return nil, ErrNilMap
	}
	if g.codomain.Dim() != f.domain.Dim() {
		return nil, fmt.Errorf("compose %s->%s after %s->%s: %w",
			f.domain, f.codomain, g.domain, g.codomain, ErrDimensionMismatch)
	}
	rows := make([]Vector, g.domain.Dim())
	for i, r := range g.rows {
		img, err := f.Apply(r)
		if err != nil {
			return nil, err
		}
		rows[i] = img
	}

	return NewMap(g.domain, f.codomain, rows)
}
