package cohomology

import (
	"fmt"

	"github.com/arithlab/maruyama/linalg"
	"github.com/arithlab/maruyama/ring"
)

// MaruyamaComplex computes sheaf cohomology from a graded free resolution.
// The twist is baked into the resolution's shifts (see
// ring.GradedFreeResolution.Twist). Immutable after construction; summands
// and differentials are memoized per step, at most once per key.
//
// With r the ambient projective dimension (ring generators minus one), the
// cohomological case split is:
//
//	t == r:      H(r) = topGroup(0) / im(dTop(1))
//	1 <= t < r:  H(t) = ker(dTop(r-t)) / im(dTop(r-t+1))
//	t == 0:      dimension only, via the rank formula in HDim
//	t > r:       zero (Grothendieck vanishing)
//	t < 0:       ErrNegativeIndex
type MaruyamaComplex struct {
	res *ring.GradedFreeResolution
	r   int // projective space dimension

	bottoms  map[int]*Summand
	tops     map[int]*Summand
	dBottoms map[int]*linalg.Map
	dTops    map[int]*linalg.Map
}

// NewMaruyamaComplex wraps a resolution for cohomology queries.
func NewMaruyamaComplex(res *ring.GradedFreeResolution) *MaruyamaComplex {
	return &MaruyamaComplex{
		res:      res,
		r:        res.BaseRing().NGens() - 1,
		bottoms:  make(map[int]*Summand),
		tops:     make(map[int]*Summand),
		dBottoms: make(map[int]*linalg.Map),
		dTops:    make(map[int]*linalg.Map),
	}
}

// Resolution returns the underlying resolution.
func (c *MaruyamaComplex) Resolution() *ring.GradedFreeResolution { return c.res }

// ProjectiveSpaceDimension returns r, the dimension of the ambient P^r.
func (c *MaruyamaComplex) ProjectiveSpaceDimension() int { return c.r }

// BottomGroup returns the H^0-flavored summand of resolution step i.
// Steps beyond the resolution length are zero modules. Memoized.
func (c *MaruyamaComplex) BottomGroup(i int) *Summand {
	if s, ok := c.bottoms[i]; ok {
		return s
	}
	s := NewSummand(c.res.BaseRing(), Bottom, c.res.Shifts(i))
	c.bottoms[i] = s

	return s
}

// TopGroup returns the H^r-flavored summand of resolution step i. Memoized.
func (c *MaruyamaComplex) TopGroup(i int) *Summand {
	if s, ok := c.tops[i]; ok {
		return s
	}
	s := NewSummand(c.res.BaseRing(), Top, c.res.Shifts(i))
	c.tops[i] = s

	return s
}

// DifferentialBottom returns the induced map between the bottom groups of
// steps i and i-1, for i >= 1. Memoized.
func (c *MaruyamaComplex) DifferentialBottom(i int) (*linalg.Map, error) {
	if d, ok := c.dBottoms[i]; ok {
		return d, nil
	}
	d, err := newDifferential(c.res.Differential(i), c.BottomGroup(i), c.BottomGroup(i-1))
	if err != nil {
		return nil, fmt.Errorf("bottom differential %d: %w", i, err)
	}
	c.dBottoms[i] = d

	return d, nil
}

// DifferentialTop returns the induced map between the top groups of steps
// i and i-1, for i >= 1. Memoized.
func (c *MaruyamaComplex) DifferentialTop(i int) (*linalg.Map, error) {
	if d, ok := c.dTops[i]; ok {
		return d, nil
	}
	d, err := newDifferential(c.res.Differential(i), c.TopGroup(i), c.TopGroup(i-1))
	if err != nil {
		return nil, fmt.Errorf("top differential %d: %w", i, err)
	}
	c.dTops[i] = d

	return d, nil
}

// H returns the cohomology group H^t as an explicit quotient space.
//
// H(0) is not available as a vector space (ErrNoSpaceForm); use HDim.
// Negative t yields ErrNegativeIndex. For t above the ambient dimension the
// zero quotient is returned.
func (c *MaruyamaComplex) H(t int) (*linalg.QuotientSpace, error) {
	switch {
	case t < 0:
		return nil, fmt.Errorf("H(%d): %w", t, ErrNegativeIndex)
	case t == 0:
		return nil, fmt.Errorf("H(0): %w", ErrNoSpaceForm)
	case t > c.r:
		zero, _ := linalg.NewSpace(0)

		return linalg.FullSubspace(zero).Quotient(linalg.FullSubspace(zero))
	case t == c.r:
		d1, err := c.DifferentialTop(1)
		if err != nil {
			return nil, err
		}

		return linalg.FullSubspace(c.TopGroup(0).Space()).Quotient(d1.Image())
	default: // 1 <= t < r
		dKer, err := c.DifferentialTop(c.r - t)
		if err != nil {
			return nil, err
		}
		dIm, err := c.DifferentialTop(c.r - t + 1)
		if err != nil {
			return nil, err
		}

		return dKer.Kernel().Quotient(dIm.Image())
	}
}

// HDim returns h^t = dim H^t. For 1 <= t <= r it shortcuts through ranks
// without materializing the quotient; the result equals H(t).Dim() exactly.
// For t = 0 it evaluates the Euler-characteristic-style formula
//
//	h^0 = rank bottom(0) - rank top(r+1) + rank top(r)
//	    - rank dBottom(1) - rank dTop(r)
//
// which is taken as given and pinned by known-value tests.
func (c *MaruyamaComplex) HDim(t int) (int, error) {
	switch {
	case t < 0:
		return 0, fmt.Errorf("h(%d): %w", t, ErrNegativeIndex)
	case t > c.r:
		return 0, nil
	case t == 0:
		dB1, err := c.DifferentialBottom(1)
		if err != nil {
			return 0, err
		}
		dTr, err := c.DifferentialTop(c.r)
		if err != nil {
			return 0, err
		}
		h := c.BottomGroup(0).Rank() - c.TopGroup(c.r+1).Rank() + c.TopGroup(c.r).Rank()
		h -= dB1.Rank() + dTr.Rank()

		return h, nil
	case t == c.r:
		d1, err := c.DifferentialTop(1)
		if err != nil {
			return 0, err
		}

		return c.TopGroup(0).Rank() - d1.Rank(), nil
	default: // 1 <= t < r
		dKer, err := c.DifferentialTop(c.r - t)
		if err != nil {
			return 0, err
		}
		dIm, err := c.DifferentialTop(c.r - t + 1)
		if err != nil {
			return 0, err
		}
		kernelDim := c.TopGroup(c.r-t).Rank() - dKer.Rank()

		return kernelDim - dIm.Rank(), nil
	}
}
