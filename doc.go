// Package maruyama computes the cohomology of coherent sheaves on projective
// space from graded free resolutions, over exact rational arithmetic.
//
// 🚀 What is maruyama?
//
//	A pure-Go computational-algebra library implementing Maruyama's method:
//	given a finitely generated graded module M over the homogeneous
//	coordinate ring S = Q[x0..xr] of P^r, it computes the dimensions (and
//	explicit vector spaces) of the sheaf cohomology groups H^t(M~(n)) for
//	any twist n. Everything is exact — no floating point anywhere.
//
// ✨ Why choose maruyama?
//
//   - Exact arithmetic – all linear algebra runs over big.Rat rationals
//   - Deterministic – fixed basis orders, reproducible across runs
//   - Pure Go – no cgo, the only external dependency is test tooling
//   - Small API – a Sheaf facade over a handful of composable layers
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/       — graded polynomial rings, sparse polynomials, free resolutions
//	linalg/     — exact vectors, right-acting linear maps, kernels & quotients
//	cohomology/ — shifted monomial bases, bottom/top summands, the Maruyama complex
//	sheaf/      — projective spaces, subschemes, coherent sheaves & twists
//
// Quick example — the Fermat quartic curve in P^2:
//
//	P2, _ := sheaf.NewProjectiveSpace(2)
//	f     := /* x0^4 + x1^4 + x2^4 over P2.CoordinateRing() */
//	X, _  := P2.Subscheme(1, f)
//	sh, _ := X.StructureSheaf()
//	h0, _ := sh.Cohomology(0)          // 1
//	h1, _ := sh.Cohomology(1)          // 3
//	chi, _ := sh.EulerCharacteristic() // -2
//
//	go get github.com/arithlab/maruyama
package maruyama
