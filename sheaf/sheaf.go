package sheaf

import (
	"fmt"

	"github.com/arithlab/maruyama/cohomology"
	"github.com/arithlab/maruyama/linalg"
)

// placement tags how a sheaf's cohomology complex is derived.
type placement int

const (
	// onAmbientSpace: the defining module lives over the coordinate ring of
	// the base projective space; resolve it directly.
	onAmbientSpace placement = iota
	// onSubscheme: the sheaf lives on a closed subscheme; its module has
	// been pushed forward to the ambient space, where the same machinery
	// applies. The base scheme's own dimension still bounds the
	// Euler-characteristic sum.
	onSubscheme
)

// Sheaf is a coherent sheaf given by a base scheme, a defining graded
// module (over the ambient coordinate ring) and an integer twist. The
// cohomology complex is built lazily on first query and cached, as are
// computed dimensions; repeated queries never recompute.
//
// A Sheaf is immutable: Twist returns a new value sharing the scheme and
// module.
type Sheaf struct {
	scheme  Scheme
	ambient *ProjectiveSpace
	module  Module
	twistBy int
	place   placement

	complex *cohomology.MaruyamaComplex
	dims    map[int]int
}

// BaseScheme returns the scheme the sheaf lives on.
func (s *Sheaf) BaseScheme() Scheme { return s.scheme }

// AmbientSpace returns the projective space the cohomology complex is
// computed on (the base scheme itself, or the ambient space of a
// subscheme after pushforward).
func (s *Sheaf) AmbientSpace() *ProjectiveSpace { return s.ambient }

// DefiningModule returns the defining module.
func (s *Sheaf) DefiningModule() Module { return s.module }

// TwistDegree returns the twist n of M(n).
func (s *Sheaf) TwistDegree() int { return s.twistBy }

// String renders the sheaf with its twist and base scheme.
func (s *Sheaf) String() string {
	if s.twistBy != 0 {
		return fmt.Sprintf("twisted sheaf (n=%d) on %v", s.twistBy, s.scheme)
	}

	return fmt.Sprintf("sheaf on %v", s.scheme)
}

// Twist returns the sheaf of M(n+t): same scheme and module, twist raised
// by t, fresh caches. The receiver is unchanged.
func (s *Sheaf) Twist(t int) *Sheaf {
	return &Sheaf{
		scheme:  s.scheme,
		ambient: s.ambient,
		module:  s.module,
		twistBy: s.twistBy + t,
		place:   s.place,
	}
}

// cohomologyComplex resolves the module, applies the twist, and wraps the
// result in a MaruyamaComplex. Built at most once per sheaf.
func (s *Sheaf) cohomologyComplex() (*cohomology.MaruyamaComplex, error) {
	if s.complex != nil {
		return s.complex, nil
	}
	if s.module == nil {
		return nil, ErrNilModule
	}

	// Subscheme sheaves carry a module already pushed forward to the
	// ambient space (see Subscheme.StructureSheaf), so both placements
	// resolve over the ambient coordinate ring.
	res, err := s.module.Resolution()
	if err != nil {
		return nil, err
	}
	s.complex = cohomology.NewMaruyamaComplex(res.Twist(s.twistBy))

	return s.complex, nil
}

// Cohomology returns h^t = dim H^t of the sheaf. Results are cached per
// index; repeated calls return equal values without recomputation.
func (s *Sheaf) Cohomology(t int) (int, error) {
	if h, ok := s.dims[t]; ok {
		return h, nil
	}
	c, err := s.cohomologyComplex()
	if err != nil {
		return 0, err
	}
	h, err := c.HDim(t)
	if err != nil {
		return 0, err
	}
	if s.dims == nil {
		s.dims = make(map[int]int)
	}
	s.dims[t] = h

	return h, nil
}

// CohomologyGroup returns H^t as an explicit quotient space. H^0 is not
// available in this form (cohomology.ErrNoSpaceForm); use Cohomology.
func (s *Sheaf) CohomologyGroup(t int) (*linalg.QuotientSpace, error) {
	c, err := s.cohomologyComplex()
	if err != nil {
		return nil, err
	}

	return c.H(t)
}

// EulerCharacteristic returns Σ_{i=0}^{d} (-1)^i h^i with d the base scheme
// dimension; higher terms vanish by Grothendieck vanishing.
func (s *Sheaf) EulerCharacteristic() (int, error) {
	chi := 0
	sign := 1
	for i := 0; i <= s.scheme.Dimension(); i++ {
		h, err := s.Cohomology(i)
		if err != nil {
			return 0, err
		}
		chi += sign * h
		sign = -sign
	}

	return chi, nil
}
