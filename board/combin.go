package board

import "gonum.org/v1/gonum/stat/combin"

// KSubsets enumerates every k-subset of {0..n-1} in lexicographic order,
// used by the forced-sale expansion to consider which properties to
// liquidate. Built on gonum's combinatorics helper rather than a
// hand-rolled generator, since gonum is already pulled in for the
// auction bid-quantile distribution.
func KSubsets(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	return combin.Combinations(n, k)
}
