// Package ring models the polynomial-ring side of the cohomology engine:
// graded polynomial rings over the rationals, sparse multivariate
// polynomials, matrices of polynomials, and graded free resolutions.
//
// What:
//
//   - Ring wraps the homogeneous coordinate ring Q[x0..xr] of a projective
//     space: a generator count plus variable names. It carries no element
//     storage of its own.
//   - Polynomial is a canonicalized sparse term list (parallel coefficient
//     and exponent-vector sequences), with just enough arithmetic to build
//     resolution differentials: Add, Sub, Neg, Mul, Scale.
//   - Matrix is a dense matrix of polynomials with fail-fast shape checks.
//   - GradedFreeResolution is a finite chain of free modules S(-m) given by
//     per-step shift lists, connected by polynomial differentials. Twist(n)
//     shifts the whole chain; steps beyond the length are zero modules.
//   - KoszulResolution builds the closed-form minimal resolution of S/(f1..fc)
//     for a homogeneous regular sequence — the standard Koszul complex.
//
// Why:
//
//   - The cohomology engine consumes resolutions through a narrow surface:
//     Shifts(i), Differential(i), BaseRing(). This package is that surface.
//   - Coefficients are exact (*big.Rat): kernel and rank computations
//     downstream must hold exactly, so floating point is never used.
//
// Conventions:
//
//   - A shift m denotes the free summand S(-m): its generator sits in
//     degree m.
//   - Differential(i) has rows indexed by the step i-1 summands and columns
//     by the step i summands; entry (row, col) is homogeneous of degree
//     Shifts(i)[col] - Shifts(i-1)[row].
//   - Polynomial terms are kept in decreasing lexicographic exponent order,
//     merged and zero-pruned, so term iteration is deterministic.
//
// Errors:
//
//   - ErrNoGenerators: a ring needs at least one variable.
//   - ErrExponentLength: exponent vector length differs from the ring's
//     generator count, or an exponent is negative.
//   - ErrBadShape: negative matrix dimensions (zero-sized sides are legal
//     zero modules).
//   - ErrOutOfRange: matrix index outside valid bounds.
//   - ErrDimensionMismatch: differential shape disagrees with shift lists,
//     or operands live over different rings.
//   - ErrInhomogeneous: a differential entry is not homogeneous of the
//     degree forced by the grading.
//   - ErrKoszulInput: Koszul input empty, zero, or non-homogeneous.
package ring
