package cohomology

// basis.go enumerates the integer-vector monomial bases of shifted graded
// pieces. Orders are fixed and reproducible: later code finds a vector's
// position in these lists, so the total order is part of the contract.

// EnumerateBottom returns all length-n integer vectors with entries >= 0
// summing to -m, in decreasing lexicographic order; empty when -m < 0.
// This is the degree-(-m) monomial basis of the polynomial ring in n
// variables, i.e. H^0 of the line bundle O(-m) on P^{n-1}.
//
// Count: C(-m+n-1, n-1). Passing n <= 0 is a programmer error and panics.
//
// Time: O(n · count); Memory: O(n · count).
func EnumerateBottom(n, m int) [][]int {
	if n <= 0 {
		panic("cohomology: basis enumeration needs a positive generator count")
	}
	if -m < 0 {
		return nil
	}

	return compositions(n, -m)
}

// EnumerateTop returns all length-n integer vectors with entries >= 1
// summing to -m, each presented negated: entries <= -1 summing to m. Empty
// when -m < n (n positive integers cannot sum below n). Via local duality
// these vectors index a monomial basis of the top cohomology H^{n-1} of a
// twisted line bundle on P^{n-1}; the engine relies only on the sum and
// sign constraints.
//
// Order: decreasing lexicographic on the non-negated vectors.
//
// Time: O(n · count); Memory: O(n · count).
func EnumerateTop(n, m int) [][]int {
	if n <= 0 {
		panic("cohomology: basis enumeration needs a positive generator count")
	}
	if -m < n {
		return nil
	}
	// strictly positive vectors summing to -m are shifted compositions of
	// -m - n into n non-negative parts
	base := compositions(n, -m-n)
	for _, v := range base {
		for i := range v {
			v[i] = -(v[i] + 1)
		}
	}

	return base
}

// compositions lists all length-n vectors of non-negative integers summing
// to s, in decreasing lexicographic order (largest first entry first).
func compositions(n, s int) [][]int {
	var out [][]int
	cur := make([]int, n)
	var rec func(pos, left int)
	rec = func(pos, left int) {
		if pos == n-1 {
			cur[pos] = left
			v := make([]int, n)
			copy(v, cur)
			out = append(out, v)

			return
		}
		for e := left; e >= 0; e-- {
			cur[pos] = e
			rec(pos+1, left-e)
		}
	}
	rec(0, s)

	return out
}
