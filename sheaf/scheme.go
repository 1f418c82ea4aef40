package sheaf

import (
	"fmt"

	"github.com/arithlab/maruyama/ring"
)

// Scheme is the minimal surface a sheaf needs from its base: the dimension
// bounding the Euler-characteristic sum. The full scheme object model lives
// outside this library.
type Scheme interface {
	// Dimension returns the scheme dimension.
	Dimension() int
}

// ProjectiveSpace is P^r over Q with coordinate ring Q[x0..xr].
type ProjectiveSpace struct {
	dim  int
	ring *ring.Ring
}

// NewProjectiveSpace builds P^r. Returns ErrBadDimension for r < 0.
func NewProjectiveSpace(r int) (*ProjectiveSpace, error) {
	if r < 0 {
		return nil, fmt.Errorf("P^%d: %w", r, ErrBadDimension)
	}

	return &ProjectiveSpace{dim: r, ring: ring.CoordinateRing(r)}, nil
}

// Dimension returns r.
func (P *ProjectiveSpace) Dimension() int { return P.dim }

// CoordinateRing returns the homogeneous coordinate ring Q[x0..xr].
func (P *ProjectiveSpace) CoordinateRing() *ring.Ring { return P.ring }

// String renders the space as "P^r over QQ".
func (P *ProjectiveSpace) String() string { return fmt.Sprintf("P^%d over QQ", P.dim) }

// CoherentSheaf associates a sheaf on P^r to a defining module and twist.
func (P *ProjectiveSpace) CoherentSheaf(m Module, twist int) (*Sheaf, error) {
	if m == nil {
		return nil, ErrNilModule
	}

	return &Sheaf{scheme: P, ambient: P, module: m, twistBy: twist, place: onAmbientSpace}, nil
}

// StructureSheaf returns O_{P^r}, the sheaf of the free module S.
func (P *ProjectiveSpace) StructureSheaf() (*Sheaf, error) {
	m, err := NewCyclicModule(P.ring)
	if err != nil {
		return nil, err
	}

	return P.CoherentSheaf(m, 0)
}

// Subscheme builds the closed subscheme of P^r cut out by the given
// homogeneous equations, with the stated dimension. Dimension computation
// is Gröbner territory and stays outside this library, so the caller
// supplies it. Returns ErrBadDimension unless 0 <= dim < r.
func (P *ProjectiveSpace) Subscheme(dim int, gens ...ring.Polynomial) (*Subscheme, error) {
	if dim < 0 || dim >= P.dim {
		return nil, fmt.Errorf("dimension %d in %s: %w", dim, P, ErrBadDimension)
	}

	return &Subscheme{ambient: P, dim: dim, gens: append([]ring.Polynomial(nil), gens...)}, nil
}

// Subscheme is a closed subscheme X ⊆ P^r with its defining equations.
type Subscheme struct {
	ambient *ProjectiveSpace
	dim     int
	gens    []ring.Polynomial
}

// Dimension returns the stated dimension of X.
func (X *Subscheme) Dimension() int { return X.dim }

// Ambient returns the ambient projective space.
func (X *Subscheme) Ambient() *ProjectiveSpace { return X.ambient }

// DefiningPolynomials returns a copy of the defining equations.
func (X *Subscheme) DefiningPolynomials() []ring.Polynomial {
	return append([]ring.Polynomial(nil), X.gens...)
}

// String renders the subscheme with its ambient space.
func (X *Subscheme) String() string {
	return fmt.Sprintf("closed subscheme of %s (%d equations)", X.ambient, len(X.gens))
}

// StructureSheaf returns O_X pushed forward to the ambient space: the sheaf
// of the S-module S/I_X. Cohomology is insensitive to the pushforward along
// a closed immersion, so H^t(X, O_X) = H^t(P^r, O_X as an S-module).
// The provided resolution source is the Koszul complex, so the defining
// equations must form a regular sequence (X a complete intersection);
// general subschemes need a ResolvedModule from external machinery.
func (X *Subscheme) StructureSheaf() (*Sheaf, error) {
	m, err := NewCyclicModule(X.ambient.CoordinateRing(), X.gens...)
	if err != nil {
		return nil, err
	}

	return &Sheaf{scheme: X, ambient: X.ambient, module: m, twistBy: 0, place: onSubscheme}, nil
}

// CoherentSheaf associates a sheaf on X to a module already pushed forward
// to the ambient coordinate ring.
func (X *Subscheme) CoherentSheaf(m Module, twist int) (*Sheaf, error) {
	if m == nil {
		return nil, ErrNilModule
	}

	return &Sheaf{scheme: X, ambient: X.ambient, module: m, twistBy: twist, place: onSubscheme}, nil
}
