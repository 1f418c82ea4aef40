package linalg

import "math/big"

// gauss.go holds the single shared elimination kernel backing Rank, Kernel,
// Image, Contains and Quotient. Pivoting is deterministic: columns are
// scanned left to right and the first remaining row with a nonzero entry
// becomes the pivot row. All arithmetic is exact.

// echelon reduces the given rows to reduced row echelon form over columns
// [0, width). Input rows are cloned; the originals are untouched. Returns
// the nonzero echelon rows and their pivot columns, in row order.
//
// Time: O(r·width·min(r,width)) rational ops; Memory: O(r·width).
func echelon(rows []Vector, width int) (basis []Vector, pivots []int) {
	work := make([]Vector, len(rows))
	for i, r := range rows {
		work[i] = r.Clone()
	}

	rank := 0
	tmp := new(big.Rat)
	for col := 0; col < width && rank < len(work); col++ {
		// locate pivot row
		pivot := -1
		for i := rank; i < len(work); i++ {
			if work[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]

		// normalize pivot to 1
		inv := new(big.Rat).Inv(work[rank][col])
		work[rank].Scale(inv)

		// eliminate the column everywhere else (reduced form)
		for i := range work {
			if i == rank || work[i][col].Sign() == 0 {
				continue
			}
			c := tmp.Neg(work[i][col])
			work[i].AddScaled(c, work[rank])
		}

		pivots = append(pivots, col)
		rank++
	}

	return work[:rank], pivots
}

// leftKernel returns a reduced echelon basis of {v : v·M = 0}, where M is
// given as rows (the images of the domain basis vectors, each of length
// width). The classic augmented-identity scheme: echelonize [M | I] with
// pivots restricted to the M-block; rows whose M-block vanishes carry kernel
// vectors in the identity block.
func leftKernel(rows []Vector, width int) []Vector {
	d := len(rows)
	aug := make([]Vector, d)
	for i, r := range rows {
		v := NewVector(width + d)
		for j, e := range r {
			v[j].Set(e)
		}
		v[width+i].SetInt64(1)
		aug[i] = v
	}

	rank := 0
	tmp := new(big.Rat)
	for col := 0; col < width && rank < d; col++ {
		pivot := -1
		for i := rank; i < d; i++ {
			if aug[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		aug[rank], aug[pivot] = aug[pivot], aug[rank]
		inv := new(big.Rat).Inv(aug[rank][col])
		aug[rank].Scale(inv)
		for i := range aug {
			if i == rank || aug[i][col].Sign() == 0 {
				continue
			}
			c := tmp.Neg(aug[i][col])
			aug[i].AddScaled(c, aug[rank])
		}
		rank++
	}

	// rows below the rank have zero M-block; their identity blocks span the
	// left kernel
	kernel := make([]Vector, 0, d-rank)
	for i := rank; i < d; i++ {
		v := make(Vector, d)
		for j := 0; j < d; j++ {
			v[j] = new(big.Rat).Set(aug[i][width+j])
		}
		kernel = append(kernel, v)
	}
	basis, _ := echelon(kernel, d)

	return basis
}
