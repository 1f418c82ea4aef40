package ring_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithlab/maruyama/ring"
)

// one is the rational unit used across the fixtures.
var one = big.NewRat(1, 1)

// TestNewRing_Errors verifies that a ring needs at least one generator.
func TestNewRing_Errors(t *testing.T) {
	_, err := ring.NewRing()
	assert.ErrorIs(t, err, ring.ErrNoGenerators)
}

// TestCoordinateRing checks generator count and naming for P^r.
func TestCoordinateRing(t *testing.T) {
	R := ring.CoordinateRing(2)
	assert.Equal(t, 3, R.NGens())
	assert.Equal(t, "x1", R.VarName(1))
	assert.Equal(t, "QQ[x0, x1, x2]", R.String())
}

// TestMonomial_Errors rejects wrong exponent lengths and negative exponents.
func TestMonomial_Errors(t *testing.T) {
	R := ring.CoordinateRing(2)

	_, err := R.Monomial(one, 1, 2)
	assert.ErrorIs(t, err, ring.ErrExponentLength, "short exponent vector must error")

	_, err = R.Monomial(one, 1, -1, 0)
	assert.ErrorIs(t, err, ring.ErrExponentLength, "negative exponent must error")
}

// TestPolynomial_AddCancel verifies merging and exact cancellation.
func TestPolynomial_AddCancel(t *testing.T) {
	R := ring.CoordinateRing(1)
	p, err := R.Monomial(one, 2, 0)
	require.NoError(t, err)
	q, err := R.Monomial(big.NewRat(-1, 1), 2, 0)
	require.NoError(t, err)

	sum, err := p.Add(q)
	require.NoError(t, err)
	assert.True(t, sum.IsZero(), "p + (-p) must cancel exactly")

	double, err := p.Add(p)
	require.NoError(t, err)
	assert.Equal(t, 1, double.NTerms(), "equal exponents must merge")
	assert.Equal(t, 0, double.Coefficients()[0].Cmp(big.NewRat(2, 1)))
}

// TestPolynomial_CanonicalOrder verifies deterministic decreasing-lex term order.
func TestPolynomial_CanonicalOrder(t *testing.T) {
	R := ring.CoordinateRing(2)
	a, _ := R.Monomial(one, 0, 0, 4)
	b, _ := R.Monomial(one, 4, 0, 0)
	c, _ := R.Monomial(one, 0, 4, 0)

	f, err := R.Sum(a, b, c)
	require.NoError(t, err)
	exps := f.Exponents()
	require.Len(t, exps, 3)
	assert.Equal(t, []int{4, 0, 0}, exps[0])
	assert.Equal(t, []int{0, 4, 0}, exps[1])
	assert.Equal(t, []int{0, 0, 4}, exps[2])
}

// TestPolynomial_Homogeneity covers homogeneous and mixed-degree inputs.
func TestPolynomial_Homogeneity(t *testing.T) {
	R := ring.CoordinateRing(2)
	x4, _ := R.Monomial(one, 4, 0, 0)
	y4, _ := R.Monomial(one, 0, 4, 0)
	lin, _ := R.Monomial(one, 1, 0, 0)

	f, _ := x4.Add(y4)
	deg, hom := f.IsHomogeneous()
	assert.True(t, hom)
	assert.Equal(t, 4, deg)

	g, _ := f.Add(lin)
	_, hom = g.IsHomogeneous()
	assert.False(t, hom, "degree-4 plus degree-1 is not homogeneous")

	_, hom = R.Zero().IsHomogeneous()
	assert.True(t, hom, "zero polynomial is homogeneous")

	assert.Equal(t, 4, g.Degree(), "total degree is the maximum term degree")
	assert.Equal(t, -1, R.Zero().Degree())
}

// TestPolynomial_Mul checks a product with cross terms and ring mismatch.
func TestPolynomial_Mul(t *testing.T) {
	R := ring.CoordinateRing(1)
	x, _ := R.Monomial(one, 1, 0)
	y, _ := R.Monomial(one, 0, 1)

	sum, err := x.Add(y)
	require.NoError(t, err)
	sq, err := sum.Mul(sum)
	require.NoError(t, err)
	// (x+y)^2 = x^2 + 2xy + y^2
	require.Equal(t, 3, sq.NTerms())
	assert.Equal(t, []int{1, 1}, sq.Exponents()[1])
	assert.Equal(t, 0, sq.Coefficients()[1].Cmp(big.NewRat(2, 1)))

	other := ring.CoordinateRing(2)
	z, _ := other.Monomial(one, 1, 0, 0)
	_, err = x.Mul(z)
	assert.ErrorIs(t, err, ring.ErrDimensionMismatch)
}

// TestPolynomial_String spot-checks rendering.
func TestPolynomial_String(t *testing.T) {
	R := ring.CoordinateRing(2)
	assert.Equal(t, "0", R.Zero().String())

	f, _ := R.Monomial(big.NewRat(3, 2), 2, 1, 0)
	assert.Equal(t, "3/2*x0^2*x1", f.String())
}
