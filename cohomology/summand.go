package cohomology

import (
	"strconv"

	"github.com/arithlab/maruyama/linalg"
	"github.com/arithlab/maruyama/ring"
)

// Flavor selects which graded piece a summand enumerates: global sections
// (Bottom, H^0 of each line-bundle summand) or top local cohomology
// (Top, H^r of each summand).
type Flavor int

const (
	// Bottom enumerates non-negative vectors: H^0 bases.
	Bottom Flavor = iota
	// Top enumerates strictly negative vectors: H^r bases.
	Top
)

// Summand is the bottom or top cohomology group of one resolution step
// F_i = ⊕_j S(-m_j): the direct sum of per-shift monomial bases, flattened
// into one indexed basis with an abstract vector space over Q.
//
// Invariants: basis vectors within one shift are pairwise distinct; the
// combined basis preserves per-shift grouping order; every basis vector of
// the shift-m block sums to -m (both flavors). A shift with an empty basis
// occupies zero dimensions but still gets a correct running offset.
type Summand struct {
	ring   *ring.Ring
	flavor Flavor
	shifts []int

	summandsBasis [][][]int
	summandsIndex []int
	rank          int
	space         *linalg.Space
	lookup        []map[string]int // per shift: presented vector -> position
}

// NewSummand enumerates the per-shift bases of the given flavor and builds
// the combined indexed basis. The shift list may be empty (a zero module).
//
// Time: O(Σ_shift n · |basis(shift)|).
func NewSummand(R *ring.Ring, flavor Flavor, shifts []int) *Summand {
	n := R.NGens()
	s := &Summand{
		ring:   R,
		flavor: flavor,
		shifts: append([]int(nil), shifts...),
	}
	for _, m := range shifts {
		var basis [][]int
		if flavor == Bottom {
			basis = EnumerateBottom(n, m)
		} else {
			// presented vectors of the shift-m block must sum to -m
			basis = EnumerateTop(n, -m)
		}
		idx := make(map[string]int, len(basis))
		for k, v := range basis {
			idx[exponentKey(v)] = k
		}
		s.summandsBasis = append(s.summandsBasis, basis)
		s.summandsIndex = append(s.summandsIndex, s.rank)
		s.lookup = append(s.lookup, idx)
		s.rank += len(basis)
	}
	s.space, _ = linalg.NewSpace(s.rank)

	return s
}

// Flavor returns Bottom or Top.
func (s *Summand) Flavor() Flavor { return s.flavor }

// Shifts returns a copy of the shift list.
func (s *Summand) Shifts() []int { return append([]int(nil), s.shifts...) }

// SummandsBasis returns the per-shift bases. Shared storage — callers must
// not mutate the vectors.
func (s *Summand) SummandsBasis() [][][]int { return s.summandsBasis }

// SummandsIndex returns the running offset of each shift's block within the
// combined flat basis.
func (s *Summand) SummandsIndex() []int { return append([]int(nil), s.summandsIndex...) }

// Rank returns the total combined dimension.
func (s *Summand) Rank() int { return s.rank }

// Space returns the abstract rank-dimensional vector space over Q.
func (s *Summand) Space() *linalg.Space { return s.space }

// position locates a presented vector within the basis of the given shift
// block. The second result is false when the vector is not a basis member.
func (s *Summand) position(block int, u []int) (int, bool) {
	k, ok := s.lookup[block][exponentKey(u)]

	return k, ok
}

// exponentKey encodes an integer vector for map lookup.
func exponentKey(v []int) string {
	key := make([]byte, 0, 4*len(v))
	for _, e := range v {
		key = strconv.AppendInt(key, int64(e), 10)
		key = append(key, ',')
	}

	return string(key)
}
