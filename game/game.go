package game

import "fmt"

// New validates the dimensions and values of a game and returns an
// immutable copy of it. n and k are given explicitly so that a caller's
// declared shape is checked against the tables it actually supplied.
//
// Validation stages (first failure wins):
//  1. n ≥ 1, k ≥ 1, n ≤ MaxPlayers.
//  2. len(weights) == n, len(weights[i]) == k, len(quotas) == k.
//  3. every weight and quota is non-negative.
//
// Complexity: O(n·k).
func New(n, k int, weights [][]int64, quotas []int64) (*Game, error) {
	// Stage 1: declared dimensions.
	if n <= 0 {
		return nil, ErrNoPlayers
	}
	if k <= 0 {
		return nil, ErrNoResolutions
	}
	if n > MaxPlayers {
		return nil, fmt.Errorf("%w: n=%d, max=%d", ErrTooManyPlayers, n, MaxPlayers)
	}

	// Stage 2: table shape.
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weight rows, want %d", ErrDimensionMismatch, len(weights), n)
	}
	if len(quotas) != k {
		return nil, fmt.Errorf("%w: %d quotas, want %d", ErrDimensionMismatch, len(quotas), k)
	}

	// Stage 3: values, copied into the dense buffer as we go.
	g := &Game{
		n:      n,
		k:      k,
		w:      make([]int64, n*k),
		quotas: make([]int64, k),
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != k {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d", ErrDimensionMismatch, i, len(weights[i]), k)
		}
		for j = 0; j < k; j++ {
			if weights[i][j] < 0 {
				return nil, fmt.Errorf("%w: weights[%d][%d]=%d", ErrNegativeWeight, i, j, weights[i][j])
			}
			g.w[i*k+j] = weights[i][j]
		}
	}
	for j = 0; j < k; j++ {
		if quotas[j] < 0 {
			return nil, fmt.Errorf("%w: quotas[%d]=%d", ErrNegativeQuota, j, quotas[j])
		}
		g.quotas[j] = quotas[j]
	}

	return g, nil
}

// N returns the number of players.
func (g *Game) N() int { return g.n }

// K returns the number of resolutions.
func (g *Game) K() int { return g.k }

// Weight returns player i's contribution to resolution j.
func (g *Game) Weight(i, j int) int64 { return g.w[i*g.k+j] }

// Quota returns the threshold of resolution j.
func (g *Game) Quota(j int) int64 { return g.quotas[j] }

// Weights returns a fresh n×k copy of the weight table.
func (g *Game) Weights() [][]int64 {
	out := make([][]int64, g.n)
	for i := range out {
		out[i] = append([]int64(nil), g.w[i*g.k:(i+1)*g.k]...)
	}

	return out
}

// Quotas returns a fresh copy of the quota vector.
func (g *Game) Quotas() []int64 {
	return append([]int64(nil), g.quotas...)
}

// Grand returns the coalition of all players.
func (g *Game) Grand() Coalition { return Grand(g.n) }

// CheckProper reports whether the game is proper: the grand coalition wins
// and the empty coalition loses. Calculators do not call it; a degenerate
// game still yields indices, they just lose their usual interpretation
// (Shapley values no longer sum to 1).
func (g *Game) CheckProper() error {
	if !g.Wins(g.Grand()) {
		return ErrGrandCoalitionLoses
	}
	if g.Wins(Empty) {
		return ErrEmptyCoalitionWins
	}

	return nil
}
