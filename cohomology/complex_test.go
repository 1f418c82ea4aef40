package cohomology_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithlab/maruyama/cohomology"
	"github.com/arithlab/maruyama/ring"
)

// fermat returns x0^d + ... + x{n-1}^d over R.
func fermat(t *testing.T, R *ring.Ring, d int) ring.Polynomial {
	t.Helper()
	one := big.NewRat(1, 1)
	f := R.Zero()
	for i := 0; i < R.NGens(); i++ {
		exp := make([]int, R.NGens())
		exp[i] = d
		m, err := R.Monomial(one, exp...)
		require.NoError(t, err)
		f, err = f.Add(m)
		require.NoError(t, err)
	}

	return f
}

// fermatQuarticCurve resolves the structure sheaf module of
// {x0^4+x1^4+x2^4 = 0} in P^2, twisted by n.
func fermatQuarticCurve(t *testing.T, n int) *cohomology.MaruyamaComplex {
	t.Helper()
	R := ring.CoordinateRing(2)
	res, err := ring.KoszulResolution(R, fermat(t, R, 4))
	require.NoError(t, err)

	return cohomology.NewMaruyamaComplex(res.Twist(n))
}

// twistedCubic hand-builds the Eagon–Northcott resolution of the twisted
// cubic curve in P^3: S <- S(-2)^3 <- S(-3)^2 <- 0, with the 2x2 minors of
// [[x0,x1,x2],[x1,x2,x3]] and the matrix itself as differentials.
func twistedCubic(t *testing.T, n int) *cohomology.MaruyamaComplex {
	t.Helper()
	R := ring.CoordinateRing(3)
	one := big.NewRat(1, 1)

	mono := func(exp ...int) ring.Polynomial {
		m, err := R.Monomial(one, exp...)
		require.NoError(t, err)

		return m
	}
	minor := func(a, b ring.Polynomial) ring.Polynomial {
		d, err := a.Sub(b)
		require.NoError(t, err)

		return d
	}

	// minors: q0 = x1*x3 - x2^2, q1 = x0*x3 - x1*x2, q2 = x0*x2 - x1^2
	q0 := minor(mono(0, 1, 0, 1), mono(0, 0, 2, 0))
	q1 := minor(mono(1, 0, 0, 1), mono(0, 1, 1, 0))
	q2 := minor(mono(1, 0, 1, 0), mono(0, 2, 0, 0))

	d1, err := ring.NewMatrix(R, 1, 3)
	require.NoError(t, err)
	require.NoError(t, d1.Set(0, 0, q0))
	require.NoError(t, d1.Set(0, 1, q1.Neg()))
	require.NoError(t, d1.Set(0, 2, q2))

	d2, err := ring.NewMatrix(R, 3, 2)
	require.NoError(t, err)
	require.NoError(t, d2.Set(0, 0, mono(1, 0, 0, 0))) // x0
	require.NoError(t, d2.Set(0, 1, mono(0, 1, 0, 0))) // x1
	require.NoError(t, d2.Set(1, 0, mono(0, 1, 0, 0))) // x1
	require.NoError(t, d2.Set(1, 1, mono(0, 0, 1, 0))) // x2
	require.NoError(t, d2.Set(2, 0, mono(0, 0, 1, 0))) // x2
	require.NoError(t, d2.Set(2, 1, mono(0, 0, 0, 1))) // x3

	res, err := ring.NewGradedFreeResolution(R,
		[][]int{{0}, {2, 2, 2}, {3, 3}},
		[]*ring.Matrix{d1, d2})
	require.NoError(t, err)

	return cohomology.NewMaruyamaComplex(res.Twist(n))
}

// TestMaruyama_FermatQuarticCurve pins the genus-3 plane quartic:
// h^0 = 1, h^1 = 3, h^2 = 0 at twist 0.
func TestMaruyama_FermatQuarticCurve(t *testing.T) {
	c := fermatQuarticCurve(t, 0)
	assert.Equal(t, 2, c.ProjectiveSpaceDimension())

	h0, err := c.HDim(0)
	require.NoError(t, err)
	assert.Equal(t, 1, h0)

	h1, err := c.HDim(1)
	require.NoError(t, err)
	assert.Equal(t, 3, h1, "a genus-3 curve has h^1(O) = 3")

	h2, err := c.HDim(2)
	require.NoError(t, err)
	assert.Equal(t, 0, h2)
}

// TestMaruyama_FermatQuarticTwists walks known twists of the plane quartic.
func TestMaruyama_FermatQuarticTwists(t *testing.T) {
	cases := []struct {
		twist  string
		n      int
		h0, h1 int
	}{
		{"TwistOne", 1, 3, 1},
		{"TwistTwo", 2, 6, 0},
		// twist 4 drives a nonzero bottom differential: the single degree-0
		// generator maps by x0^4+x1^4+x2^4, rank 1, so h0 = 15 - 1 = 14
		{"TwistFour", 4, 14, 0},
		// twist -5 drives a nonzero top differential of rank 6: h1 = 28 - 6
		{"TwistMinusFive", -5, 0, 22},
	}
	for _, tc := range cases {
		t.Run(tc.twist, func(t *testing.T) {
			c := fermatQuarticCurve(t, tc.n)
			h0, err := c.HDim(0)
			require.NoError(t, err)
			assert.Equal(t, tc.h0, h0, "h0 at twist %d", tc.n)
			h1, err := c.HDim(1)
			require.NoError(t, err)
			assert.Equal(t, tc.h1, h1, "h1 at twist %d", tc.n)
		})
	}
}

// TestMaruyama_K3 pins the Fermat quartic surface in P^3:
// h^0 = 1, h^1 = 0, h^2 = 1 (a K3 surface).
func TestMaruyama_K3(t *testing.T) {
	R := ring.CoordinateRing(3)
	res, err := ring.KoszulResolution(R, fermat(t, R, 4))
	require.NoError(t, err)
	c := cohomology.NewMaruyamaComplex(res)

	want := []int{1, 0, 1, 0}
	for tt, w := range want {
		h, err := c.HDim(tt)
		require.NoError(t, err)
		assert.Equal(t, w, h, "h^%d of the K3 surface", tt)
	}
}

// TestMaruyama_TwistedCubic pins the rational normal curve of degree 3.
func TestMaruyama_TwistedCubic(t *testing.T) {
	c := twistedCubic(t, 0)
	want := []int{1, 0, 0, 0}
	for tt, w := range want {
		h, err := c.HDim(tt)
		require.NoError(t, err)
		assert.Equal(t, w, h, "h^%d of the twisted cubic", tt)
	}
}

// TestMaruyama_ChainProperty verifies d(i) ∘ d(i+1) = 0 for both flavors on
// a genuine two-step resolution, exactly over Q.
func TestMaruyama_ChainProperty(t *testing.T) {
	t.Run("Top", func(t *testing.T) {
		c := twistedCubic(t, -5)
		d1, err := c.DifferentialTop(1)
		require.NoError(t, err)
		d2, err := c.DifferentialTop(2)
		require.NoError(t, err)
		require.Positive(t, d2.Domain().Dim(), "fixture must have nonempty top groups")

		comp, err := d1.Compose(d2)
		require.NoError(t, err)
		assert.True(t, comp.IsZero(), "top differentials must compose to zero")
	})

	t.Run("Bottom", func(t *testing.T) {
		c := twistedCubic(t, 4)
		d1, err := c.DifferentialBottom(1)
		require.NoError(t, err)
		d2, err := c.DifferentialBottom(2)
		require.NoError(t, err)
		require.Positive(t, d2.Domain().Dim(), "fixture must have nonempty bottom groups")

		comp, err := d1.Compose(d2)
		require.NoError(t, err)
		assert.True(t, comp.IsZero(), "bottom differentials must compose to zero")
	})
}

// TestMaruyama_Vanishing checks Grothendieck vanishing above the ambient
// dimension across twists.
func TestMaruyama_Vanishing(t *testing.T) {
	for _, n := range []int{-3, 0, 2, 5} {
		c := fermatQuarticCurve(t, n)
		for tt := 3; tt <= 6; tt++ {
			h, err := c.HDim(tt)
			require.NoError(t, err)
			assert.Zero(t, h, "h^%d must vanish above P^2 at twist %d", tt, n)

			q, err := c.H(tt)
			require.NoError(t, err)
			assert.Zero(t, q.Dim())
		}
	}
}

// TestMaruyama_RoundTrip checks that the explicit quotient and the rank
// shortcut agree for 1 <= t <= r.
func TestMaruyama_RoundTrip(t *testing.T) {
	complexes := map[string]*cohomology.MaruyamaComplex{
		"QuarticTwist0":      fermatQuarticCurve(t, 0),
		"QuarticTwistMinus5": fermatQuarticCurve(t, -5),
		"TwistedCubicMinus5": twistedCubic(t, -5),
	}
	for name, c := range complexes {
		t.Run(name, func(t *testing.T) {
			for tt := 1; tt <= c.ProjectiveSpaceDimension(); tt++ {
				q, err := c.H(tt)
				require.NoError(t, err)
				h, err := c.HDim(tt)
				require.NoError(t, err)
				assert.Equal(t, q.Dim(), h, "H(%d) and h(%d) must agree", tt, tt)
			}
		})
	}
}

// TestMaruyama_Errors covers the index error surface and memoization.
func TestMaruyama_Errors(t *testing.T) {
	c := fermatQuarticCurve(t, 0)

	_, err := c.HDim(-1)
	assert.ErrorIs(t, err, cohomology.ErrNegativeIndex)
	_, err = c.H(-2)
	assert.ErrorIs(t, err, cohomology.ErrNegativeIndex)

	_, err = c.H(0)
	assert.ErrorIs(t, err, cohomology.ErrNoSpaceForm, "H(0) is dimension-only by design")

	// memoization: summands and differentials are built once per step
	assert.Same(t, c.TopGroup(1), c.TopGroup(1))
	d1a, err := c.DifferentialTop(1)
	require.NoError(t, err)
	d1b, err := c.DifferentialTop(1)
	require.NoError(t, err)
	assert.Same(t, d1a, d1b)
}
