package ring

import "fmt"

// GradedFreeResolution is a finite chain of graded free modules
//
//	F_0 <- F_1 <- ... <- F_length
//
// where F_i = ⊕_j S(-Shifts(i)[j]) and the arrow into F_{i-1} is
// Differential(i). The chain is immutable after construction; Twist returns
// shifted copies sharing the differentials.
//
// Grading invariant (checked by the constructor): every nonzero entry of
// Differential(i) at (row, col) is homogeneous of degree
// Shifts(i)[col] - Shifts(i-1)[row].
type GradedFreeResolution struct {
	ring   *Ring
	shifts [][]int
	diffs  []*Matrix // diffs[i-1] is Differential(i), i = 1..length
}

// NewGradedFreeResolution validates and assembles a resolution from per-step
// shift lists and differentials. len(diffs) must equal len(shifts)-1; each
// diffs[i-1] must be len(shifts[i-1]) x len(shifts[i]); every entry must
// satisfy the grading invariant. The chain-complex identity d∘d = 0 is NOT
// checked here — it is a property of the supplied data, surfaced downstream
// if violated.
//
// Errors: ErrDimensionMismatch (shape disagreement), ErrInhomogeneous
// (grading violation), ErrNoGenerators (nil ring via NGens on nil).
func NewGradedFreeResolution(R *Ring, shifts [][]int, diffs []*Matrix) (*GradedFreeResolution, error) {
	if len(shifts) == 0 {
		return nil, fmt.Errorf("resolution needs at least one step: %w", ErrDimensionMismatch)
	}
	if len(diffs) != len(shifts)-1 {
		return nil, fmt.Errorf("%d differentials for %d steps: %w", len(diffs), len(shifts), ErrDimensionMismatch)
	}
	for i, d := range diffs {
		step := i + 1
		if d == nil {
			return nil, fmt.Errorf("differential %d is nil: %w", step, ErrDimensionMismatch)
		}
		if d.NRows() != len(shifts[step-1]) || d.NCols() != len(shifts[step]) {
			return nil, fmt.Errorf("differential %d is %dx%d, want %dx%d: %w",
				step, d.NRows(), d.NCols(), len(shifts[step-1]), len(shifts[step]), ErrDimensionMismatch)
		}
		for row := 0; row < d.NRows(); row++ {
			for col := 0; col < d.NCols(); col++ {
				p, _ := d.At(row, col)
				if p.IsZero() {
					continue
				}
				deg, hom := p.IsHomogeneous()
				want := shifts[step][col] - shifts[step-1][row]
				if !hom || deg != want {
					return nil, fmt.Errorf("differential %d entry (%d,%d) degree %d, want %d: %w",
						step, row, col, deg, want, ErrInhomogeneous)
				}
			}
		}
	}
	sc := make([][]int, len(shifts))
	for i, s := range shifts {
		sc[i] = make([]int, len(s))
		copy(sc[i], s)
	}
	dc := make([]*Matrix, len(diffs))
	copy(dc, diffs)

	return &GradedFreeResolution{ring: R, shifts: sc, diffs: dc}, nil
}

// BaseRing returns the ring the resolution lives over.
func (res *GradedFreeResolution) BaseRing() *Ring { return res.ring }

// Length returns the number of differentials (the last step index).
func (res *GradedFreeResolution) Length() int { return len(res.shifts) - 1 }

// Shifts returns a copy of the shift list at step i. Steps beyond the length
// are the zero modules padding every finite resolution: an empty list.
// Panics when i < 0 (programmer error).
func (res *GradedFreeResolution) Shifts(i int) []int {
	if i < 0 {
		panic("ring: negative resolution step")
	}
	if i >= len(res.shifts) {
		return nil
	}
	out := make([]int, len(res.shifts[i]))
	copy(out, res.shifts[i])

	return out
}

// Differential returns the map F_i -> F_{i-1}, for i >= 1. Beyond the length
// the differential is the zero map out of a zero module: a matrix with
// len(Shifts(i-1)) rows and no columns. Panics when i < 1 (programmer error).
func (res *GradedFreeResolution) Differential(i int) *Matrix {
	if i < 1 {
		panic("ring: resolution differential index must be >= 1")
	}
	if i <= res.Length() {
		return res.diffs[i-1]
	}
	m, _ := NewMatrix(res.ring, len(res.Shifts(i-1)), 0)

	return m
}

// Twist returns the resolution of the twisted module M(n): every shift
// decreases by n, differentials are shared (twisting preserves the grading
// invariant). Value semantics; the receiver is unchanged.
func (res *GradedFreeResolution) Twist(n int) *GradedFreeResolution {
	shifts := make([][]int, len(res.shifts))
	for i, s := range res.shifts {
		shifts[i] = make([]int, len(s))
		for j, m := range s {
			shifts[i][j] = m - n
		}
	}

	return &GradedFreeResolution{ring: res.ring, shifts: shifts, diffs: res.diffs}
}
