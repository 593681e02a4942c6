package powerindex

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/votepower/banzhaf"
	"github.com/katalvlaran/votepower/game"
	"github.com/katalvlaran/votepower/shapley"
)

// Compute validates the request and runs the calculator selected by kind.
//
// Stages:
//  1. g non-nil, kind supported, MaxPlayers within the calculator's range
//     (after capping, when requested).
//  2. n ≤ MaxPlayers (checked here so both kinds report ErrTooManyPlayers).
//  3. Optional proper-game check.
//  4. Dispatch with ctx; the calculator itself checks ctx while enumerating.
func Compute(ctx context.Context, g *game.Game, kind Kind, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return compute(ctx, g, kind, o)
}

func compute(ctx context.Context, g *game.Game, kind Kind, o Options) (Result, error) {
	// Stage 1: request shape.
	if g == nil {
		return Result{}, ErrNilGame
	}
	if !kind.valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	limit := limitFor(kind)
	if o.CapMaxPlayers && o.MaxPlayers > limit {
		o.MaxPlayers = limit
	}
	if o.MaxPlayers < 1 || o.MaxPlayers > limit {
		return Result{}, fmt.Errorf("%w: %d not in [1, %d] for %s", ErrBadMaxPlayers, o.MaxPlayers, limit, kind)
	}

	// Stage 2: resource ceiling.
	n := g.N()
	if n > o.MaxPlayers {
		return Result{}, fmt.Errorf("%w: n=%d, limit=%d", ErrTooManyPlayers, n, o.MaxPlayers)
	}
	if n > WarnPlayers {
		log.Warnw("large game, enumeration may take a while", "kind", kind, "players", n, "resolutions", g.K())
	}

	// Stage 3: degenerate games.
	if o.RequireProper {
		if err := g.CheckProper(); err != nil {
			return Result{}, fmt.Errorf("powerindex: %w", err)
		}
	}

	// Stage 4: dispatch.
	start := time.Now()
	var (
		res Result
		err error
	)
	switch kind {
	case Banzhaf:
		var br banzhaf.Result
		br, err = banzhaf.Banzhaf(g,
			banzhaf.WithContext(ctx),
			banzhaf.WithMaxPlayers(o.MaxPlayers),
		)
		res = Result{Kind: kind, Values: br.Normalized, Raw: br.Raw}
	case Shapley:
		var sr shapley.Result
		sr, err = shapley.Shapley(g,
			shapley.WithContext(ctx),
			shapley.WithMaxPlayers(o.MaxPlayers),
			shapley.WithMethod(o.ShapleyMethod),
		)
		if err == nil && sr.Unpivoted() > 0 {
			log.Debugw("orders without a pivotal player", "unpivoted", sr.Unpivoted(), "of", sr.Permutations)
		}
		res = Result{Kind: kind, Values: sr.Values, Raw: sr.Counts}
	}
	if err != nil {
		return Result{}, fmt.Errorf("powerindex: %s: %w", kind, err)
	}

	log.Debugw("index computed", "kind", kind, "players", n, "resolutions", g.K(), "elapsed", time.Since(start))

	return res, nil
}
