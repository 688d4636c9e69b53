package design

import "svw.info/exactcover/internal/domain"

// fixedBlocks computes the canonical blocks forced to cut relabeled
// duplicates out of the search. Two families, in order:
//
// horizontal, prefix {0..t-2} plus a run of k-t+1 consecutive points,
// for i = 0, 1, ... while the run stays below v:
//
//	0 ... t-2  t-1          ... k-1
//	0 ... t-2  k            ... 2k-t
//	0 ... t-2  ik-(i-1)t+(i-1) ... (i+1)k-it+(i-1)
//
// then one vertical block, prefix {0..t-3} plus t-1 and the first point of
// each horizontal run:
//
//	0 ... t-3  t-1  k  2k-t+1 ...
//
// The index arithmetic is not proven correct over the whole (t,k,v) space;
// every produced block is checked and a malformed one is reported as an
// invariant violation rather than forced into the search.
func fixedBlocks(t, v, k int) ([][]int, error) {
	var blocks [][]int

	for i := 0; (i+1)*k-i*t+(i-1) < v; i++ {
		block := make([]int, 0, k)
		for p := 0; p <= t-2; p++ {
			block = append(block, p)
		}
		lo := i*k - (i-1)*t + (i - 1)
		hi := (i+1)*k - i*t + i
		for p := lo; p < hi; p++ {
			block = append(block, p)
		}
		if err := checkBlock(block, v, k); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	vert := make([]int, 0, k)
	for p := 0; p <= t-3; p++ {
		vert = append(vert, p)
	}
	for i := 0; i <= k-t+1; i++ {
		vert = append(vert, i*k-(i-1)*t+(i-1))
	}
	if err := checkBlock(vert, v, k); err != nil {
		return nil, err
	}
	return append(blocks, vert), nil
}

func checkBlock(block []int, v, k int) error {
	if len(block) != k {
		return domain.Invariantf("block fixing", "block %v has %d points, want %d", block, len(block), k)
	}
	for i, p := range block {
		if p < 0 || p >= v {
			return domain.Invariantf("block fixing", "block %v: point %d outside [0,%d)", block, p, v)
		}
		if i > 0 && block[i-1] >= p {
			return domain.Invariantf("block fixing", "block %v is not strictly increasing", block)
		}
	}
	return nil
}
