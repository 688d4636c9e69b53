// Package combin provides the subset oracle used by the design reduction,
// backed by gonum's combinatorics routines.
package combin

import (
	"iter"

	gcombin "gonum.org/v1/gonum/stat/combin"
)

// LexOracle implements ports.SubsetOracle over gonum's lexicographic
// combination order.
type LexOracle struct{}

// New returns the gonum-backed oracle.
func New() LexOracle { return LexOracle{} }

func (LexOracle) Binomial(n, m int) int { return gcombin.Binomial(n, m) }

func (LexOracle) Subsets(n, m int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		gen := gcombin.NewCombinationGenerator(n, m)
		for gen.Next() {
			if !yield(gen.Combination(nil)) {
				return
			}
		}
	}
}

// SubsetsOf maps each m-subset of {0..len(ground)-1} through ground,
// producing the induced lexicographic order of the ground slice itself.
func (o LexOracle) SubsetsOf(ground []int, m int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for idx := range o.Subsets(len(ground), m) {
			sub := make([]int, m)
			for i, x := range idx {
				sub[i] = ground[x]
			}
			if !yield(sub) {
				return
			}
		}
	}
}

func (LexOracle) Rank(n int, subset []int) int {
	return gcombin.CombinationIndex(subset, n, len(subset))
}

func (LexOracle) Unrank(n, m, rank int) []int {
	return gcombin.IndexToCombination(nil, rank, n, m)
}
