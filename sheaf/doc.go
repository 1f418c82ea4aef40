// Package sheaf is the consumer-facing surface of the cohomology engine:
// projective spaces, closed subschemes, and the coherent sheaves associated
// to graded modules, with twisting and Euler characteristics.
//
// What:
//
//   - ProjectiveSpace models P^r over Q with its coordinate ring.
//   - Subscheme is a closed subscheme of a ProjectiveSpace with a stated
//     dimension and defining equations.
//   - Module is the narrow port through which a defining module presents
//     its graded free resolution. CyclicModule (S/I via the Koszul complex
//     of a complete intersection) and ResolvedModule (an explicitly given
//     resolution) are provided.
//   - Sheaf wraps a base scheme, a defining module and an integer twist;
//     it lazily builds a cohomology.MaruyamaComplex and exposes
//     Cohomology(t), CohomologyGroup(t), EulerCharacteristic() and
//     Twist(n).
//
// Why:
//
//	Callers think in sheaves and twists, not in resolutions. This package
//	owns the twist bookkeeping, the ambient-vs-subscheme dispatch, and the
//	per-sheaf memoization; the cohomology package never sees a scheme.
//
// Dispatch:
//
//	A sheaf is tagged ambient-space or subscheme. Subscheme sheaves are
//	pushed forward to the ambient projective space along the inclusion —
//	cohomology is insensitive to the pushforward — so both arms feed the
//	same complex construction; the tag also fixes the scheme dimension
//	bounding the Euler-characteristic sum.
//
// Errors:
//
//   - ErrNilModule: a sheaf over a nil defining module.
//   - ErrBadDimension: a subscheme dimension outside [0, ambient dim).
//   - cohomology.ErrNegativeIndex, cohomology.ErrNoSpaceForm and friends
//     propagate unchanged from the engine.
package sheaf
