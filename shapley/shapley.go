package shapley

import (
	"context"
	"fmt"

	"github.com/katalvlaran/votepower/factorial"
	"github.com/katalvlaran/votepower/game"
	"github.com/katalvlaran/votepower/internal/decimal"
)

// Shapley computes the Shapley value of every player of g.
//
// Contract:
//   - g must be non-nil; n is checked against Options.MaxPlayers before any
//     enumeration starts.
//   - The game need not be proper; see Result.Unpivoted.
//   - On cancellation the context error is returned and no partial result.
//
// Complexity: see the package documentation for each Method.
func Shapley(g *game.Game, opts ...Option) (Result, error) {
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
	if err := o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	var (
		fact   = factorial.NewCache()
		counts []uint64
		perms  uint64
		err    error
	)
	switch o.Method {
	case Permutations:
		w := newWalker(o.Ctx, g, fact)
		if err = w.walk(0); err != nil {
			return Result{}, err
		}
		counts, perms = w.counts, w.perms
	case Subsets:
		counts, perms, err = sweep(o.Ctx, g, fact)
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(o.Method))
	}

	return Result{
		Counts:       counts,
		Permutations: perms,
		Values:       decimal.Ratios(counts, fact.Of(n)),
	}, nil
}

// walker owns the mutable search state of one Permutations run.
//
// used and sums always describe the current prefix set: every step that
// places a player restores both before returning, on success and on error,
// so sibling branches start from the same state.
type walker struct {
	ctx  context.Context
	g    *game.Game
	n    int
	fact *factorial.Cache

	used game.Coalition // players already placed
	sums []int64        // per-resolution weight of used

	counts []uint64 // pivotal orders per player
	perms  uint64   // orders accounted for so far
	steps  int      // sparse cancellation counter
}

func newWalker(ctx context.Context, g *game.Game, fact *factorial.Cache) *walker {
	return &walker{
		ctx:    ctx,
		g:      g,
		n:      g.N(),
		fact:   fact,
		sums:   make([]int64, g.K()),
		counts: make([]uint64, g.N()),
	}
}

// tick performs the sparse cancellation check.
func (w *walker) tick() error {
	w.steps++
	if w.steps&checkEvery != 0 {
		return nil
	}

	return w.ctx.Err()
}

// walk explores every extension of the current prefix set of size depth.
func (w *walker) walk(depth int) error {
	if err := w.tick(); err != nil {
		return err
	}

	// 1. Complete order with no pivot: only reachable if the grand coalition loses.
	if depth == w.n {
		w.perms++
		return nil
	}

	// 2. Prefix already wins: nobody after it can be pivotal.
	if w.g.MeetsQuotas(w.sums) {
		w.perms += w.fact.Of(w.n - depth)
		return nil
	}

	// 3. Prefix loses: try every unplaced player next.
	var i int
	for i = 0; i < w.n; i++ {
		if w.used.Has(i) {
			continue
		}

		w.g.Accumulate(w.sums, i)
		if w.g.MeetsQuotas(w.sums) {
			// i is pivotal after any arrangement of used; the rest is free
			free := w.fact.Of(w.n - depth - 1)
			w.counts[i] += free
			w.perms += free
			w.g.Retract(w.sums, i)
			continue
		}

		w.used = w.used.With(i)
		err := w.walk(depth + 1)
		w.used = w.used.Without(i)
		w.g.Retract(w.sums, i)
		if err != nil {
			return err
		}
	}

	return nil
}
