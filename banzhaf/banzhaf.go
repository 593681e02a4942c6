package banzhaf

import (
	"fmt"

	"github.com/katalvlaran/votepower/game"
	"github.com/katalvlaran/votepower/internal/decimal"
)

// Banzhaf enumerates all 2^n coalitions of g and counts, for every player,
// the losing coalitions that the player's addition turns winning.
//
// Contract:
//   - g must be non-nil; its size is checked against Options.MaxPlayers
//     before any enumeration starts.
//   - The game need not be proper; a game nobody can win yields all zeros.
//   - On cancellation no partial result is returned.
//
// Complexity: O(2^n · n · k) time, O(n) memory.
func Banzhaf(g *game.Game, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGame
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxPlayers < 1 || o.MaxPlayers > MaxPlayersLimit {
		return Result{}, fmt.Errorf("%w: %d not in [1, %d]", ErrBadMaxPlayers, o.MaxPlayers, MaxPlayersLimit)
	}

	n := g.N()
	if n > o.MaxPlayers {
		return Result{}, fmt.Errorf("%w: n=%d, limit=%d", ErrTooManyPlayers, n, o.MaxPlayers)
	}

	var (
		raw   = make([]uint64, n)
		total = game.Coalition(1) << uint(n)
		mask  game.Coalition
		i     int
	)
	for mask = 0; mask < total; mask++ {
		// sparse cancellation check, mask 0 included
		if mask&checkEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		if g.Wins(mask) {
			continue // a winning S has no swings
		}
		for i = 0; i < n; i++ {
			if mask.Has(i) {
				continue
			}
			if g.Wins(mask.With(i)) {
				raw[i]++
			}
		}
	}

	// every player sits outside exactly half of all coalitions
	den := uint64(1) << uint(n-1)

	return Result{
		Raw:        raw,
		Normalized: decimal.Ratios(raw, den),
	}, nil
}
