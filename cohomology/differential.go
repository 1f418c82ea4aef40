package cohomology

import (
	"fmt"

	"github.com/arithlab/maruyama/linalg"
	"github.com/arithlab/maruyama/ring"
)

// newDifferential translates the resolution differential F_i -> F_{i-1},
// given as a matrix of polynomials M (rows indexing the step i-1 shifts,
// columns the step i shifts), into an explicit linear map
//
//	target.Space() -> source.Space()
//
// where target is the summand at step i and source the summand at step i-1.
//
// For each column col and each basis vector v of that shift's block, the
// image is accumulated row by row: every (coefficient, exponent) term of
// M[row, col] contributes at the flat coordinate of u = v + exponent inside
// row's block, offset by source.SummandsIndex()[row]. Terms whose u fails
// the flavor's sign predicate (Bottom: any entry < 0; Top: any entry >= 0)
// fall outside the graded piece and are discarded. The grading forces
// sum(u) == -source shift at row for every surviving and discarded term
// alike; a violation means the resolution is malformed and fails loudly
// with ErrGradingMismatch.
//
// The (col, basis-vector) iteration order defines the rows of the resulting
// right-acting map, matching the summand's combined basis order.
//
// Time: O(Σ_shift |basis(shift)| · nnz(M column) · terms); the bases are
// binomial-sized, small for practical twists.
func newDifferential(M *ring.Matrix, target, source *Summand) (*linalg.Map, error) {
	if target.Flavor() != source.Flavor() {
		return nil, fmt.Errorf("mixed flavors: %w", ErrShapeMismatch)
	}
	if M.NCols() != len(target.SummandsBasis()) || M.NRows() != len(source.SummandsBasis()) {
		return nil, fmt.Errorf("differential %dx%d between %d and %d summands: %w",
			M.NRows(), M.NCols(), len(source.SummandsBasis()), len(target.SummandsBasis()), ErrShapeMismatch)
	}

	flavor := target.Flavor()
	sourceShifts := source.Shifts()
	sourceIndex := source.SummandsIndex()
	rows := make([]linalg.Vector, 0, target.Rank())

	for col, basis := range target.SummandsBasis() {
		for _, v := range basis {
			image := linalg.NewVector(source.Rank())
			for row := 0; row < M.NRows(); row++ {
				f, err := M.At(row, col)
				if err != nil {
					return nil, err
				}
				coeffs := f.Coefficients()
				exps := f.Exponents()
				for t := range coeffs {
					u := make([]int, len(v))
					sum := 0
					for k := range v {
						u[k] = v[k] + exps[t][k]
						sum += u[k]
					}
					if sum != -sourceShifts[row] {
						return nil, fmt.Errorf("monomial lands in degree %d, want %d (step shift %d): %w",
							sum, -sourceShifts[row], sourceShifts[row], ErrGradingMismatch)
					}
					if outOfPiece(flavor, u) {
						continue
					}
					pos, ok := source.position(row, u)
					if !ok {
						// unreachable for in-piece vectors of the right degree
						return nil, fmt.Errorf("basis position missing for %v: %w", u, ErrGradingMismatch)
					}
					k := sourceIndex[row] + pos
					image[k].Add(image[k], coeffs[t])
				}
			}
			rows = append(rows, image)
		}
	}

	return linalg.NewMap(target.Space(), source.Space(), rows)
}

// outOfPiece reports whether u falls outside the flavor's graded piece.
func outOfPiece(flavor Flavor, u []int) bool {
	for _, e := range u {
		if flavor == Bottom && e < 0 {
			return true
		}
		if flavor == Top && e >= 0 {
			return true
		}
	}

	return false
}
