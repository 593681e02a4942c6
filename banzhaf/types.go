package banzhaf

import (
	"context"
	"errors"

	"github.com/katalvlaran/votepower/internal/decimal"
)

const (
	// DefaultMaxPlayers is the default ceiling on n: 2^20 coalitions is
	// still interactive.
	DefaultMaxPlayers = 20

	// MaxPlayersLimit is the highest ceiling a caller may configure.
	MaxPlayersLimit = 30

	// checkEvery is the cancellation stride (a power of two minus one, used
	// as a mask on the coalition counter).
	checkEvery = 4095
)

var (
	// ErrNilGame indicates that a nil *game.Game was passed to Banzhaf.
	ErrNilGame = errors.New("banzhaf: game is nil")

	// ErrBadMaxPlayers indicates a ceiling outside [1, MaxPlayersLimit].
	ErrBadMaxPlayers = errors.New("banzhaf: MaxPlayers out of range")

	// ErrTooManyPlayers indicates that the game exceeds the configured ceiling.
	ErrTooManyPlayers = errors.New("banzhaf: too many players")
)

// Option configures a Banzhaf computation.
type Option func(*Options)

// Options holds the knobs of a Banzhaf computation.
type Options struct {
	// Ctx aborts the enumeration when done; defaults to context.Background().
	Ctx context.Context

	// MaxPlayers rejects larger games up front. Default DefaultMaxPlayers.
	MaxPlayers int
}

// DefaultOptions returns Options with a background context and
// MaxPlayers = DefaultMaxPlayers.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxPlayers: DefaultMaxPlayers,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPlayers sets the player ceiling.
func WithMaxPlayers(limit int) Option {
	return func(o *Options) {
		o.MaxPlayers = limit
	}
}

// Result is the outcome of a Banzhaf computation, indexed by player ordinal.
type Result struct {
	// Raw[i] is the number of losing coalitions that player i turns winning.
	Raw []uint64

	// Normalized[i] is Raw[i] / 2^(n-1) with six fractional digits.
	Normalized []string
}

// TotalSwings returns Σ Raw, the denominator of the normalized-by-total
// (absolute share) form of the index.
func (r Result) TotalSwings() uint64 {
	var total uint64
	for _, v := range r.Raw {
		total += v
	}

	return total
}

// Shares returns Raw[i] / TotalSwings() with six fractional digits, the
// variant of the index that sums to one. With no swings at all every share
// is zero.
func (r Result) Shares() []string {
	total := r.TotalSwings()
	if total == 0 {
		return decimal.Ratios(r.Raw, 1)
	}

	return decimal.Ratios(r.Raw, total)
}
