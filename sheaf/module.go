// Package sheaf: defining modules and sentinel errors.
package sheaf

import (
	"errors"
	"fmt"

	"github.com/arithlab/maruyama/ring"
)

// Sentinel errors for sheaf operations.
var (
	// ErrNilModule indicates a sheaf constructed over a nil defining module.
	ErrNilModule = errors.New("sheaf: defining module is nil")
	// ErrBadDimension indicates a subscheme dimension outside the ambient range.
	ErrBadDimension = errors.New("sheaf: subscheme dimension out of range")
)

// Module is the narrow port through which a defining graded module presents
// its minimal free resolution at twist zero. The engine derives twisted
// resolutions itself; implementations must return the same resolution on
// every call (value-identical shifts and differentials).
type Module interface {
	// Resolution returns the graded free resolution of the module.
	Resolution() (*ring.GradedFreeResolution, error)
}

// CyclicModule is the quotient S/(f1..fc) of the coordinate ring by a
// homogeneous complete-intersection ideal, resolved by the Koszul complex.
// With no generators it is the free module S itself.
type CyclicModule struct {
	ring *ring.Ring
	gens []ring.Polynomial
}

// NewCyclicModule builds S/(gens...) over R. Generator validation (nonzero,
// homogeneous) happens on resolution; regularity of the sequence is the
// caller's responsibility, as with any external resolution source.
func NewCyclicModule(R *ring.Ring, gens ...ring.Polynomial) (*CyclicModule, error) {
	if R == nil {
		return nil, ring.ErrNoGenerators
	}
	gs := make([]ring.Polynomial, len(gens))
	copy(gs, gens)

	return &CyclicModule{ring: R, gens: gs}, nil
}

// Ring returns the coordinate ring.
func (m *CyclicModule) Ring() *ring.Ring { return m.ring }

// Resolution returns the Koszul resolution of S/(gens), or the length-zero
// resolution of S itself when there are no generators.
func (m *CyclicModule) Resolution() (*ring.GradedFreeResolution, error) {
	if len(m.gens) == 0 {
		return ring.NewGradedFreeResolution(m.ring, [][]int{{0}}, nil)
	}
	res, err := ring.KoszulResolution(m.ring, m.gens...)
	if err != nil {
		return nil, fmt.Errorf("cyclic module resolution: %w", err)
	}

	return res, nil
}

// ResolvedModule presents an explicitly given resolution, for modules
// resolved by external machinery (Gröbner-based resolution algorithms are
// outside this library).
type ResolvedModule struct {
	res *ring.GradedFreeResolution
}

// NewResolvedModule wraps a prebuilt resolution. Returns ErrNilModule for nil.
func NewResolvedModule(res *ring.GradedFreeResolution) (*ResolvedModule, error) {
	if res == nil {
		return nil, ErrNilModule
	}

	return &ResolvedModule{res: res}, nil
}

// Resolution returns the wrapped resolution.
func (m *ResolvedModule) Resolution() (*ring.GradedFreeResolution, error) {
	return m.res, nil
}
