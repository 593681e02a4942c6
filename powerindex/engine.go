package powerindex

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/votepower/game"
)

// Engine computes indices for many games and remembers recent results.
//
// It is safe for concurrent use. Each computation still runs on a single
// goroutine; the Engine only adds:
//   - an LRU cache of finished results keyed by KeyOf(game, kind);
//   - request collapsing: concurrent callers asking for the same Key wait
//     for one shared run instead of enumerating in parallel.
//
// Errors are never cached.
type Engine struct {
	opts  Options
	cache *lru.Cache[Key, Result]
	dedup singleflight.Group
}

// NewEngine returns an Engine holding up to cacheSize results. opts apply to
// every computation the Engine performs.
func NewEngine(cacheSize int, opts ...Option) (*Engine, error) {
	if cacheSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCacheSize, cacheSize)
	}
	cache, err := lru.New[Key, Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("powerindex: creating result cache: %w", err)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{opts: o, cache: cache}, nil
}

// Compute returns the index of g under kind, from cache when possible.
//
// When a shared run started by another caller is aborted by that caller's
// context while ctx is still live, Compute starts over on its own behalf.
func (e *Engine) Compute(ctx context.Context, g *game.Game, kind Kind) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGame
	}
	if ctx == nil {
		ctx = context.Background()
	}

	key := KeyOf(g, kind)
	if res, ok := e.cache.Get(key); ok {
		log.Debugw("result cache hit", "kind", kind, "key", key)
		return res.clone(), nil
	}

	for {
		ch := e.dedup.DoChan(string(key[:]), func() (any, error) {
			res, err := compute(ctx, g, kind, e.opts)
			if err != nil {
				return nil, err
			}
			e.cache.Add(key, res)

			return res, nil
		})

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case r := <-ch:
			if r.Err != nil {
				if isContextErr(r.Err) && ctx.Err() == nil {
					continue // the leader gave up, not us
				}
				return Result{}, r.Err
			}
			return r.Val.(Result).clone(), nil
		}
	}
}

// Len reports how many results are cached.
func (e *Engine) Len() int { return e.cache.Len() }

// Purge drops every cached result.
func (e *Engine) Purge() { e.cache.Purge() }

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
