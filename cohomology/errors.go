// Package cohomology: sentinel error set.
package cohomology

import "errors"

// Sentinel errors for cohomology operations. All are surfaced synchronously;
// nothing here is retried — the arithmetic is exact and deterministic.
var (
	// ErrNegativeIndex rejects cohomological indices t < 0.
	ErrNegativeIndex = errors.New("cohomology: cohomological index must be non-negative")

	// ErrNoSpaceForm marks H(0) requested as an explicit vector space.
	// Only the dimension h(0) is available, by design — this is distinct
	// from a computation failure.
	ErrNoSpaceForm = errors.New("cohomology: H(0) is not available as a vector space")

	// ErrGradingMismatch indicates a monomial of a resolution differential
	// landing outside the graded piece forced by the shifts: the supplied
	// resolution is malformed. Fatal.
	ErrGradingMismatch = errors.New("cohomology: resolution grading mismatch")

	// ErrShapeMismatch indicates a differential whose shape disagrees with
	// the summand counts of its endpoints. Precondition violation, fatal.
	ErrShapeMismatch = errors.New("cohomology: differential shape disagrees with summands")
)
