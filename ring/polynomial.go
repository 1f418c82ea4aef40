package ring

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Term is one summand of a sparse polynomial: an exact rational coefficient
// and an exponent vector of length NGens().
type Term struct {
	Coeff *big.Rat
	Exp   []int
}

// Polynomial is a sparse multivariate polynomial over Q.
// Terms are canonical: merged by exponent, zero-pruned, and kept in
// decreasing lexicographic exponent order, so iteration is deterministic.
// A Polynomial is immutable; all operations return fresh values.
type Polynomial struct {
	n     int // ring generator count
	terms []Term
}

// Zero returns the zero polynomial of the ring.
func (R *Ring) Zero() Polynomial {
	return Polynomial{n: R.NGens()}
}

// Monomial returns c * x^exp. The exponent vector must have NGens()
// non-negative entries; otherwise ErrExponentLength.
func (R *Ring) Monomial(c *big.Rat, exp ...int) (Polynomial, error) {
	if len(exp) != R.NGens() {
		return Polynomial{}, fmt.Errorf("monomial with %d exponents in %d variables: %w", len(exp), R.NGens(), ErrExponentLength)
	}
	for _, e := range exp {
		if e < 0 {
			return Polynomial{}, fmt.Errorf("negative exponent %v: %w", exp, ErrExponentLength)
		}
	}
	if c == nil || c.Sign() == 0 {
		return R.Zero(), nil
	}
	ec := make([]int, len(exp))
	copy(ec, exp)

	return Polynomial{n: R.NGens(), terms: []Term{{Coeff: new(big.Rat).Set(c), Exp: ec}}}, nil
}

// Gen returns the i-th ring generator as a polynomial.
// Panics on an out-of-range index (programmer error).
func (R *Ring) Gen(i int) Polynomial {
	if i < 0 || i >= R.NGens() {
		panic("ring: generator index out of range")
	}
	exp := make([]int, R.NGens())
	exp[i] = 1
	p, _ := R.Monomial(big.NewRat(1, 1), exp...)

	return p
}

// Sum folds Add over the given polynomials of this ring.
func (R *Ring) Sum(ps ...Polynomial) (Polynomial, error) {
	acc := R.Zero()
	var err error
	for _, p := range ps {
		if acc, err = acc.Add(p); err != nil {
			return Polynomial{}, err
		}
	}

	return acc, nil
}

// normalize merges equal exponents, drops zero coefficients, and sorts terms
// in decreasing lexicographic exponent order. Input terms are owned by the
// caller of normalize and may be consumed.
func normalize(n int, ts []Term) Polynomial {
	sort.Slice(ts, func(i, j int) bool { return lexLess(ts[j].Exp, ts[i].Exp) })
	out := make([]Term, 0, len(ts))
	for _, t := range ts {
		if len(out) > 0 && exponentsEqual(out[len(out)-1].Exp, t.Exp) {
			out[len(out)-1].Coeff.Add(out[len(out)-1].Coeff, t.Coeff)
			continue
		}
		out = append(out, Term{Coeff: new(big.Rat).Set(t.Coeff), Exp: t.Exp})
	}
	pruned := out[:0]
	for _, t := range out {
		if t.Coeff.Sign() != 0 {
			pruned = append(pruned, t)
		}
	}

	return Polynomial{n: n, terms: pruned}
}

// lexLess reports a < b lexicographically. Vectors must have equal length.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// exponentsEqual reports componentwise equality.
func exponentsEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IsZero reports whether the polynomial has no terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// NGens returns the generator count of the owning ring.
func (p Polynomial) NGens() int { return p.n }

// NTerms returns the number of (nonzero) terms.
func (p Polynomial) NTerms() int { return len(p.terms) }

// Coefficients returns the coefficient sequence, parallel to Exponents().
// The returned rationals are shared; callers must not mutate them.
func (p Polynomial) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Coeff
	}

	return out
}

// Exponents returns the exponent-vector sequence, parallel to Coefficients().
// The returned vectors are shared; callers must not mutate them.
func (p Polynomial) Exponents() [][]int {
	out := make([][]int, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Exp
	}

	return out
}

// Add returns p + q. Returns ErrDimensionMismatch for mixed rings.
func (p Polynomial) Add(q Polynomial) (Polynomial, error) {
	if p.n != q.n {
		return Polynomial{}, fmt.Errorf("add over different rings: %w", ErrDimensionMismatch)
	}
	ts := make([]Term, 0, len(p.terms)+len(q.terms))
	ts = append(ts, p.terms...)
	ts = append(ts, q.terms...)

	return normalize(p.n, ts), nil
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) (Polynomial, error) {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	ts := make([]Term, len(p.terms))
	for i, t := range p.terms {
		ts[i] = Term{Coeff: new(big.Rat).Neg(t.Coeff), Exp: t.Exp}
	}

	return Polynomial{n: p.n, terms: ts}
}

// Scale returns c * p.
func (p Polynomial) Scale(c *big.Rat) Polynomial {
	if c == nil || c.Sign() == 0 {
		return Polynomial{n: p.n}
	}
	ts := make([]Term, len(p.terms))
	for i, t := range p.terms {
		ts[i] = Term{Coeff: new(big.Rat).Mul(t.Coeff, c), Exp: t.Exp}
	}

	return Polynomial{n: p.n, terms: ts}
}

// Mul returns p * q. Returns ErrDimensionMismatch for mixed rings.
// Time: O(|p|·|q|·log(|p|·|q|)) from the canonicalizing sort.
func (p Polynomial) Mul(q Polynomial) (Polynomial, error) {
	if p.n != q.n {
		return Polynomial{}, fmt.Errorf("mul over different rings: %w", ErrDimensionMismatch)
	}
	ts := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			exp := make([]int, p.n)
			for k := range exp {
				exp[k] = a.Exp[k] + b.Exp[k]
			}
			ts = append(ts, Term{Coeff: new(big.Rat).Mul(a.Coeff, b.Coeff), Exp: exp})
		}
	}

	return normalize(p.n, ts), nil
}

// Degree returns the total degree: the maximum term degree, or -1 for the
// zero polynomial.
func (p Polynomial) Degree() int {
	if len(p.terms) == 0 {
		return -1
	}
	d := totalDegree(p.terms[0].Exp)
	for _, t := range p.terms[1:] {
		if td := totalDegree(t.Exp); td > d {
			d = td
		}
	}

	return d
}

// IsHomogeneous reports whether all terms share one total degree, and that
// degree. The zero polynomial is homogeneous of every degree; it reports
// (0, true).
func (p Polynomial) IsHomogeneous() (int, bool) {
	if len(p.terms) == 0 {
		return 0, true
	}
	deg := totalDegree(p.terms[0].Exp)
	for _, t := range p.terms[1:] {
		if totalDegree(t.Exp) != deg {
			return 0, false
		}
	}

	return deg, true
}

// totalDegree sums an exponent vector.
func totalDegree(exp []int) int {
	d := 0
	for _, e := range exp {
		d += e
	}

	return d
}

// String renders the polynomial with the owning ring's generic variable
// names x0..x{n-1}, terms in canonical order; "0" for the zero polynomial.
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		mono := monomialString(t.Exp)
		switch {
		case mono == "":
			sb.WriteString(t.Coeff.RatString())
		case t.Coeff.Cmp(big.NewRat(1, 1)) == 0:
			sb.WriteString(mono)
		default:
			sb.WriteString(t.Coeff.RatString() + "*" + mono)
		}
	}

	return sb.String()
}

// monomialString renders x^exp, or "" for the constant monomial.
func monomialString(exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, fmt.Sprintf("x%d", i))
		case e > 1:
			parts = append(parts, fmt.Sprintf("x%d^%d", i, e))
		}
	}

	return strings.Join(parts, "*")
}
