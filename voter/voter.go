package voter

import (
	"fmt"

	"github.com/abstractsvm/svmverify/interval"
)

// pairIndex mirrors svm.Model.PairIndex without importing svm, so this
// package stays usable against any triangular-indexed pairwise score
// slice.
func pairIndex(n, i, j int) int {
	return i*(n-1) - i*(i+1)/2 + j - 1
}

// PossibleWinners returns every class index that could win the most
// one-versus-one votes under some concrete resolution of the pairwise
// comparisons scores leaves undecided (those whose bound straddles zero).
//
// For each class c this computes optimistic(c) — the vote count c gets if
// every undecided pair involving c resolves in c's favor — and
// pessimistic(c) — the vote count c gets if every undecided pair involving
// c resolves against it. A class c is kept whenever optimistic(c) >=
// pessimistic(c') for every other class c': this is a necessary condition
// for c to be able to outscore c' in some joint resolution, so keeping
// every class that satisfies it is a sound, monotone over-approximation
// of the true possible-winner set (it may keep classes that, once every
// pair's joint dependency is accounted for, cannot actually win
// simultaneously against all competitors — trading a small amount of
// precision for an O(n^2) rather than combinatorial check).
//
// Contract: len(scores) == n*(n-1)/2.
func PossibleWinners(n int, scores []interval.Interval) ([]int, error) {
	if len(scores) != n*(n-1)/2 {
		return nil, fmt.Errorf("PossibleWinners: %w", ErrSizeMismatch)
	}

	optimistic := make([]int, n)
	pessimistic := make([]int, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bound := scores[pairIndex(n, i, j)]
			switch {
			case bound.L >= 0:
				optimistic[i]++
				pessimistic[i]++
			case bound.U < 0:
				optimistic[j]++
				pessimistic[j]++
			default:
				optimistic[i]++
				optimistic[j]++
			}
		}
	}

	maxPessimistic := 0
	for _, p := range pessimistic {
		if p > maxPessimistic {
			maxPessimistic = p
		}
	}

	var winners []int
	for c := 0; c < n; c++ {
		if optimistic[c] >= maxPessimistic {
			winners = append(winners, c)
		}
	}
	return winners, nil
}
