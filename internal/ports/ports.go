// Package ports declares the capabilities the reduction layer consumes.
package ports

import "iter"

// SubsetOracle enumerates and ranks the m-element subsets of the ground set
// {0, ..., n-1} in lexicographic order. Implementations must be
// deterministic: the same parameters always produce the same order and the
// same ranks. Yielded subsets are fresh slices owned by the consumer.
type SubsetOracle interface {
	// Binomial returns C(n, m).
	Binomial(n, m int) int
	// Subsets enumerates all sorted m-subsets of {0..n-1}, lex order.
	// The sequence is finite and restartable by calling Subsets again.
	Subsets(n, m int) iter.Seq[[]int]
	// SubsetsOf enumerates the m-subsets of an arbitrary sorted ground
	// slice, in the induced lexicographic order of that ground set.
	SubsetsOf(ground []int, m int) iter.Seq[[]int]
	// Rank returns the lexicographic position of a sorted subset of
	// {0..n-1} among all subsets of its size.
	Rank(n int, subset []int) int
	// Unrank is the inverse of Rank for m-subsets of {0..n-1}.
	Unrank(n, m, rank int) []int
}
