package ring

import (
	"fmt"
	"math/big"
)

// KoszulResolution builds the Koszul complex of f1..fc as a graded free
// resolution of S/(f1..fc). For a homogeneous regular sequence (for example
// the defining equations of a complete intersection) this is the minimal
// free resolution.
//
// Step p has one free summand per size-p subset T of {1..c}, enumerated in
// lexicographic order of the sorted index tuples, with shift Σ_{i∈T} deg fi.
// The differential sends the summand of T to the summands of its facets with
// alternating signs:
//
//	d(e_T) = Σ_j (-1)^j f_{t_j} e_{T∖t_j}   (t_j the j-th smallest, j from 0)
//
// Errors: ErrKoszulInput when the generator list is empty or contains a zero
// or non-homogeneous polynomial.
//
// Time: O(2^c · c) matrix slots; Memory: O(2^c · c).
func KoszulResolution(R *Ring, gens ...Polynomial) (*GradedFreeResolution, error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("no generators: %w", ErrKoszulInput)
	}
	degs := make([]int, len(gens))
	for i, f := range gens {
		if f.IsZero() {
			return nil, fmt.Errorf("generator %d is zero: %w", i, ErrKoszulInput)
		}
		if f.NGens() != R.NGens() {
			return nil, fmt.Errorf("generator %d over wrong ring: %w", i, ErrKoszulInput)
		}
		deg, hom := f.IsHomogeneous()
		if !hom {
			return nil, fmt.Errorf("generator %d not homogeneous: %w", i, ErrKoszulInput)
		}
		degs[i] = deg
	}

	c := len(gens)
	subsets := make([][][]int, c+1)  // subsets[p] = size-p subsets, lex order
	position := make([]map[string]int, c+1)
	for p := 0; p <= c; p++ {
		subsets[p] = combinations(c, p)
		position[p] = make(map[string]int, len(subsets[p]))
		for k, T := range subsets[p] {
			position[p][subsetKey(T)] = k
		}
	}

	shifts := make([][]int, c+1)
	for p := 0; p <= c; p++ {
		shifts[p] = make([]int, len(subsets[p]))
		for k, T := range subsets[p] {
			s := 0
			for _, i := range T {
				s += degs[i]
			}
			shifts[p][k] = s
		}
	}

	minusOne := big.NewRat(-1, 1)
	diffs := make([]*Matrix, c)
	for p := 1; p <= c; p++ {
		d, err := NewMatrix(R, len(subsets[p-1]), len(subsets[p]))
		if err != nil {
			return nil, err
		}
		for col, T := range subsets[p] {
			for j, removed := range T {
				facet := make([]int, 0, p-1)
				facet = append(facet, T[:j]...)
				facet = append(facet, T[j+1:]...)
				row := position[p-1][subsetKey(facet)]
				entry := gens[removed]
				if j%2 == 1 {
					entry = entry.Scale(minusOne)
				}
				if err = d.Set(row, col, entry); err != nil {
					return nil, err
				}
			}
		}
		diffs[p-1] = d
	}

	return NewGradedFreeResolution(R, shifts, diffs)
}

// combinations enumerates the size-p subsets of {0..c-1} as sorted index
// tuples in lexicographic order. p = 0 yields the single empty subset.
func combinations(c, p int) [][]int {
	var out [][]int
	idx := make([]int, p)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == p {
			t := make([]int, p)
			copy(t, idx)
			out = append(out, t)

			return
		}
		for i := start; i < c; i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)

	return out
}

// subsetKey encodes a sorted index tuple for map lookup.
func subsetKey(T []int) string {
	key := ""
	for _, i := range T {
		key += fmt.Sprintf("%d,", i)
	}

	return key
}
