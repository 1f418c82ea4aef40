// Package cohomology is the engine core: it turns a graded free resolution
// into sheaf cohomology groups by Maruyama's method.
//
// What:
//
//   - EnumerateBottom / EnumerateTop list the integer-vector monomial bases
//     of shifted graded pieces: non-negative vectors of a fixed sum for the
//     "bottom" pieces (global sections, H^0 of a line bundle), and strictly
//     negative vectors for the "top" pieces (H^r via local duality).
//   - Summand assembles the per-shift bases of one resolution step into a
//     single indexed direct sum with an abstract vector space over Q.
//   - The differential builder translates one polynomial matrix of the
//     resolution into an explicit linear map between consecutive summands,
//     distributing each monomial's coefficient into the right basis slot
//     and discarding out-of-range terms.
//   - MaruyamaComplex orchestrates the case split over the cohomological
//     index t against the ambient dimension r: quotients of kernels by
//     images for 1 <= t <= r, an Euler-characteristic-style rank formula
//     for t = 0, and Grothendieck vanishing for t > r.
//
// Why:
//
//	For M a graded module over S = Q[x0..xr], the twisted line bundles
//	O(-m) in a free resolution of M have explicit monomial bases for H^0
//	and H^r; chasing the resolution's differentials through those bases
//	recovers H^t(M~) without ever forming the sheaf itself.
//
// Determinism:
//
//   - Basis vectors are enumerated in decreasing lexicographic order on the
//     non-negated vectors; summand offsets and map matrices inherit that
//     order, so results are reproducible across runs.
//
// Concurrency:
//
//	None. Everything is single-threaded and pure; the per-complex
//	memoization maps are not safe for concurrent use.
//
// Errors:
//
//   - ErrNegativeIndex: cohomological index t < 0.
//   - ErrNoSpaceForm: H(0) requested as a vector space — only its dimension
//     is computable by design.
//   - ErrGradingMismatch: a resolution monomial lands in the wrong graded
//     piece; the supplied resolution is malformed. Fatal, never retried.
//   - ErrShapeMismatch: differential shape disagrees with the summand
//     structure. Precondition violation, fatal.
package cohomology
