package linalg_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithlab/maruyama/linalg"
)

// space is a require-checked NewSpace.
func space(t *testing.T, dim int) *linalg.Space {
	t.Helper()
	s, err := linalg.NewSpace(dim)
	require.NoError(t, err)

	return s
}

// TestNewSpace_Errors rejects negative dimensions.
func TestNewSpace_Errors(t *testing.T) {
	_, err := linalg.NewSpace(-1)
	assert.ErrorIs(t, err, linalg.ErrBadShape)
}

// TestNewMap_Validation covers the map construction error surface.
func TestNewMap_Validation(t *testing.T) {
	d, c := space(t, 2), space(t, 3)

	_, err := linalg.NewMap(d, c, []linalg.Vector{linalg.NewVector(3)})
	assert.ErrorIs(t, err, linalg.ErrBadShape, "row count must match domain dimension")

	_, err = linalg.NewMap(d, c, []linalg.Vector{linalg.NewVector(3), linalg.NewVector(2)})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "row length must match codomain dimension")
}

// TestMap_Apply checks the right-acting convention: v·M sums scaled rows.
func TestMap_Apply(t *testing.T) {
	d, c := space(t, 2), space(t, 2)
	f, err := linalg.NewMap(d, c, []linalg.Vector{
		linalg.FromInts(1, 2),
		linalg.FromInts(0, 1),
	})
	require.NoError(t, err)

	out, err := f.Apply(linalg.FromInts(3, 4))
	require.NoError(t, err)
	assert.True(t, out.Equal(linalg.FromInts(3, 10)), "3*(1,2) + 4*(0,1) = (3,10)")

	_, err = f.Apply(linalg.FromInts(1, 2, 3))
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestMap_RankKernelImage checks the fundamental subspaces of a rank-1 map.
func TestMap_RankKernelImage(t *testing.T) {
	d, c := space(t, 3), space(t, 2)
	// rows are pairwise proportional: rank 1, kernel dim 2
	f, err := linalg.NewMap(d, c, []linalg.Vector{
		linalg.FromInts(1, 2),
		linalg.FromInts(2, 4),
		linalg.FromInts(-1, -2),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.Rank())
	assert.Equal(t, 1, f.Image().Dim())

	ker := f.Kernel()
	assert.Equal(t, 2, ker.Dim())
	assert.Equal(t, 3, ker.Ambient().Dim())
	for _, b := range ker.Basis() {
		img, err := f.Apply(b)
		require.NoError(t, err)
		assert.True(t, img.IsZero(), "kernel basis vectors must map to zero")
	}

	// rank-nullity
	assert.Equal(t, d.Dim(), f.Rank()+ker.Dim())
}

// TestMap_Compose verifies (f∘g)(v) = f(g(v)) and shape checking.
func TestMap_Compose(t *testing.T) {
	u, v, w := space(t, 1), space(t, 2), space(t, 2)
	g, err := linalg.NewMap(u, v, []linalg.Vector{linalg.FromInts(1, 1)})
	require.NoError(t, err)
	f, err := linalg.NewMap(v, w, []linalg.Vector{
		linalg.FromInts(1, 0),
		linalg.FromInts(0, 2),
	})
	require.NoError(t, err)

	fg, err := f.Compose(g)
	require.NoError(t, err)
	out, err := fg.Apply(linalg.FromInts(1))
	require.NoError(t, err)
	assert.True(t, out.Equal(linalg.FromInts(1, 2)))

	_, err = g.Compose(f)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestZeroMap checks the zero map and IsZero.
func TestZeroMap(t *testing.T) {
	f := linalg.ZeroMap(space(t, 3), space(t, 2))
	assert.True(t, f.IsZero())
	assert.Equal(t, 0, f.Rank())
	assert.Equal(t, 3, f.Kernel().Dim(), "zero map kernel is the whole domain")
}

// TestSubspace_ContainsQuotient exercises membership and quotients.
func TestSubspace_ContainsQuotient(t *testing.T) {
	amb := space(t, 3)
	v, err := linalg.NewSubspace(amb, []linalg.Vector{
		linalg.FromInts(1, 0, 0),
		linalg.FromInts(0, 1, 0),
		linalg.FromInts(1, 1, 0), // dependent
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Dim(), "dependent generators must collapse")

	ok, err := v.Contains(linalg.FromInts(2, -3, 0))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = v.Contains(linalg.FromInts(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, ok)

	w, err := linalg.NewSubspace(amb, []linalg.Vector{linalg.FromInts(1, 1, 0)})
	require.NoError(t, err)
	q, err := v.Quotient(w)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Dim())

	// quotient by a non-contained space must fail
	out, err := linalg.NewSubspace(amb, []linalg.Vector{linalg.FromInts(0, 0, 1)})
	require.NoError(t, err)
	_, err = v.Quotient(out)
	assert.ErrorIs(t, err, linalg.ErrNotSubspace)
}

// TestSubspace_FullQuotient checks V/V = 0 and Full/W dimensions.
func TestSubspace_FullQuotient(t *testing.T) {
	amb := space(t, 4)
	full := linalg.FullSubspace(amb)
	assert.Equal(t, 4, full.Dim())

	q, err := full.Quotient(full)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Dim())

	w, err := linalg.NewSubspace(amb, []linalg.Vector{
		linalg.FromInts(1, 2, 3, 4),
	})
	require.NoError(t, err)
	q, err = full.Quotient(w)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Dim())
}

// TestExactArithmetic pins a case where floating point would drift: the
// echelon pivots produce thirds and sevenths that must cancel exactly.
func TestExactArithmetic(t *testing.T) {
	amb := space(t, 2)
	third := big.NewRat(1, 3)
	seventh := big.NewRat(1, 7)

	v := linalg.Vector{new(big.Rat).Set(third), new(big.Rat).Set(seventh)}
	w := v.Clone()
	w.Scale(big.NewRat(21, 1)) // (7, 3)

	s, err := linalg.NewSubspace(amb, []linalg.Vector{v, w})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Dim(), "proportional rational vectors span a line")
}
