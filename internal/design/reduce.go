// Package design reduces the search for t-(v,k,1) designs to an exact-cover
// instance: one primary column per t-subset of the v points, one row per
// k-subset (a candidate block) covering exactly the t-subsets it contains.
// Row indices coincide with the oracle's lexicographic k-subset ranks.
package design

import (
	"context"
	"iter"

	"svw.info/exactcover/internal/dlx"
	"svw.info/exactcover/internal/domain"
	"svw.info/exactcover/internal/ports"
)

// Problem is a built design exact-cover instance.
type Problem struct {
	T, V, K int
	// Fixed holds the lex ranks of the blocks forced by the isomorphism
	// fixing, in the order they were forced. Empty when fixings are off.
	Fixed  []int
	oracle ports.SubsetOracle
	mat    *dlx.Matrix
}

// Build validates 1 <= t < k <= v and constructs the instance. With fixings
// enabled, the canonical fixed blocks are forced before the search starts;
// an inconsistent fixing set surfaces as a domain.InvariantError.
func Build(t, v, k int, fixings bool, oracle ports.SubsetOracle) (*Problem, error) {
	switch {
	case t < 1:
		return nil, domain.Validationf("t", "must be at least 1, got %d", t)
	case t >= k:
		return nil, domain.Validationf("t", "must be less than k, got t=%d k=%d", t, k)
	case k > v:
		return nil, domain.Validationf("k", "must be at most v, got k=%d v=%d", k, v)
	}

	p := &Problem{T: t, V: v, K: k, oracle: oracle}
	p.mat = dlx.NewMatrix(make([]dlx.ColumnKind, oracle.Binomial(v, t))) // all primary

	rows := make([][]int, 0, oracle.Binomial(v, k))
	for block := range oracle.Subsets(v, k) {
		cols := make([]int, 0, oracle.Binomial(k, t))
		for sub := range oracle.SubsetsOf(block, t) {
			cols = append(cols, oracle.Rank(v, sub))
		}
		rows = append(rows, cols)
	}
	if _, err := p.mat.AppendRows(rows); err != nil {
		return nil, &domain.InvariantError{Op: "design row construction", Err: err}
	}

	if fixings {
		blocks, err := fixedBlocks(t, v, k)
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			rank := oracle.Rank(v, block)
			if err := p.mat.UseRow(rank); err != nil {
				return nil, &domain.InvariantError{Op: "block fixing", Err: err}
			}
			p.Fixed = append(p.Fixed, rank)
		}
	}
	return p, nil
}

// Solutions enumerates raw solutions lazily; each includes the fixed blocks.
func (p *Problem) Solutions(ctx context.Context) iter.Seq[[]int] {
	return p.mat.Solutions(ctx)
}

// Decode maps a solution to its blocks: row index = k-subset rank.
func (p *Problem) Decode(sol []int) [][]int {
	blocks := make([][]int, 0, len(sol))
	for _, rank := range sol {
		blocks = append(blocks, p.oracle.Unrank(p.V, p.K, rank))
	}
	return blocks
}

// Stats exposes the engine's per-level search counters.
func (p *Problem) Stats() dlx.Stats { return p.mat.Stats() }
