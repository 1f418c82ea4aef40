// Package linalg provides exact finite-dimensional linear algebra over the
// rationals: coordinate vectors, right-acting linear maps, kernels, images,
// ranks, subspaces and quotient spaces.
//
// What:
//
//   - Vector is a coordinate vector with *big.Rat entries.
//   - Space is an abstract n-dimensional coordinate space over Q.
//   - Map is a linear map between spaces, stored right-acting: row i of the
//     map's matrix is the image of the domain's i-th basis vector, and the
//     map applies as v · M (row vector times matrix). This convention is
//     load-bearing for the cohomology engine and is fixed here once.
//   - Subspace is a subspace presented by a reduced-row-echelon basis;
//     QuotientSpace is V/W with its dimension.
//
// Why:
//
//   - Sheaf cohomology needs kernels, images and quotients that hold
//     EXACTLY: chain-complex identities (d∘d = 0) and Euler-characteristic
//     bookkeeping break under floating-point error. Every elimination here
//     runs over big.Rat with exact pivots.
//
// Determinism:
//
//   - One shared Gaussian-elimination kernel with fixed row order and
//     first-nonzero-column pivoting backs Rank, Kernel, Image and Contains,
//     so results are reproducible across runs.
//
// Complexity:
//
//   - Elimination on an r x c matrix: O(r·c·min(r,c)) rational operations;
//     rational bit growth is bounded in practice by the small combinatorial
//     dimensions the cohomology engine produces.
//
// Errors:
//
//   - ErrBadShape: negative dimension, or row set inconsistent with the
//     declared spaces.
//   - ErrDimensionMismatch: vector length differs from the relevant space.
//   - ErrNotSubspace: quotient requested by a non-contained subspace.
//   - ErrNilMap: nil *Map receiver or argument.
package linalg
