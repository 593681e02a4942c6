package shapley

import (
	"context"

	"github.com/cannona/choose"

	"github.com/katalvlaran/votepower/factorial"
	"github.com/katalvlaran/votepower/game"
)

// sweep computes pivotal-order counts by visiting every coalition once.
//
// A swing (S, i), with S losing and S ∪ {i} winning, is the pivot of exactly
// |S|!·(n-1-|S|)! orders: any arrangement of S, then i, then any arrangement
// of the rest. That product equals (n-1)! / C(n-1, |S|), so one factorial
// and one binomial per coalition size suffice.
func sweep(ctx context.Context, g *game.Game, fact *factorial.Cache) ([]uint64, uint64, error) {
	var (
		n      = g.N()
		counts = make([]uint64, n)
		total  = game.Coalition(1) << uint(n)
		weight = orderWeights(n, fact)
		mask   game.Coalition
		i      int
	)
	for mask = 0; mask < total; mask++ {
		if mask&checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}

		if g.Wins(mask) {
			continue
		}
		for i = 0; i < n; i++ {
			if mask.Has(i) {
				continue
			}
			if g.Wins(mask.With(i)) {
				counts[i] += weight[mask.Len()]
			}
		}
	}

	return counts, fact.Of(n), nil
}

// orderWeights returns, for s = 0..n-1, the number of orders in which a
// fixed set of size s is followed by a fixed player.
func orderWeights(n int, fact *factorial.Cache) []uint64 {
	var (
		top = fact.Of(n - 1)
		out = make([]uint64, n)
		s   int
	)
	for s = 0; s < n; s++ {
		if s == 0 || s == n-1 {
			out[s] = top // C(n-1, 0) == C(n-1, n-1) == 1
			continue
		}
		out[s] = top / uint64(choose.Choose(int64(n-1), int64(s)))
	}

	return out
}
