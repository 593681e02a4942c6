package game

import "math/bits"

// Wins reports whether coalition c meets every quota of the game.
//
// For each resolution j the weights of the members are summed and compared
// with quotas[j]; the first unmet quota makes the coalition losing. Bits at
// positions ≥ n are ignored.
//
// Wins is pure and allocation-free.
// Complexity: O(n·k) worst case.
func (g *Game) Wins(c Coalition) bool {
	c &= g.Grand()
	var (
		j   int
		sum int64
		m   uint64
	)
	for j = 0; j < g.k; j++ {
		sum = 0
		for m = uint64(c); m != 0; m &= m - 1 {
			sum += g.w[bits.TrailingZeros64(m)*g.k+j]
		}
		if sum < g.quotas[j] {
			return false
		}
	}

	return true
}

// MeetsQuotas reports whether an accumulated per-resolution sum vector
// reaches every quota. len(sums) must be K().
// Complexity: O(k).
func (g *Game) MeetsQuotas(sums []int64) bool {
	for j, q := range g.quotas {
		if sums[j] < q {
			return false
		}
	}

	return true
}

// Accumulate adds player i's weight row into sums in place.
// Complexity: O(k).
func (g *Game) Accumulate(sums []int64, i int) {
	row := g.w[i*g.k : (i+1)*g.k]
	for j, w := range row {
		sums[j] += w
	}
}

// Retract undoes Accumulate for player i.
// Complexity: O(k).
func (g *Game) Retract(sums []int64, i int) {
	row := g.w[i*g.k : (i+1)*g.k]
	for j, w := range row {
		sums[j] -= w
	}
}

// Sums returns the per-resolution weight totals of coalition c.
func (g *Game) Sums(c Coalition) []int64 {
	sums := make([]int64, g.k)
	c &= g.Grand()
	for m := uint64(c); m != 0; m &= m - 1 {
		g.Accumulate(sums, bits.TrailingZeros64(m))
	}

	return sums
}
