package shapley

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/votepower/factorial"
)

const (
	// DefaultMaxPlayers is the default ceiling on n.
	DefaultMaxPlayers = 20

	// MaxPlayersLimit is the hard ceiling: n! must fit in a uint64.
	MaxPlayersLimit = factorial.MaxExact

	// checkEvery is the cancellation stride in search steps (mask form).
	checkEvery = 4095
)

var (
	// ErrNilGame indicates that a nil *game.Game was passed to Shapley.
	ErrNilGame = errors.New("shapley: game is nil")

	// ErrBadMaxPlayers indicates a ceiling outside [1, MaxPlayersLimit].
	ErrBadMaxPlayers = errors.New("shapley: MaxPlayers out of range")

	// ErrTooManyPlayers indicates that the game exceeds the configured ceiling.
	ErrTooManyPlayers = errors.New("shapley: too many players")

	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("shapley: unknown method")
)

// Method selects the enumeration strategy.
type Method int

const (
	// Permutations is the pruned depth-first search over insertion orders.
	Permutations Method = iota

	// Subsets is the coalition sweep with binomial weights.
	Subsets
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case Permutations:
		return "permutations"
	case Subsets:
		return "subsets"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to a Method, ignoring case and
// surrounding whitespace.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permutations":
		return Permutations, nil
	case "subsets":
		return Subsets, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Option configures a Shapley computation.
type Option func(*Options)

// Options holds the knobs of a Shapley computation.
type Options struct {
	// Ctx aborts the search when done; defaults to context.Background().
	Ctx context.Context

	// MaxPlayers rejects larger games up front. Default DefaultMaxPlayers.
	MaxPlayers int

	// Method picks the enumeration strategy. Default Permutations.
	Method Method
}

// DefaultOptions returns Options with a background context,
// MaxPlayers = DefaultMaxPlayers and the Permutations method.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxPlayers: DefaultMaxPlayers,
		Method:     Permutations,
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

// WithMethod selects the enumeration strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// Result is the outcome of a Shapley computation, indexed by player ordinal.
type Result struct {
	// Counts[i] is the number of insertion orders in which player i is pivotal.
	Counts []uint64

	// Permutations is the number of orders accounted for; always n!.
	Permutations uint64

	// Values[i] is Counts[i] / n! with six fractional digits.
	Values []string
}

// Unpivoted returns the number of orders in which no player is pivotal:
// zero for a proper game, n! when the grand coalition loses or the empty
// coalition already wins.
func (r Result) Unpivoted() uint64 {
	var pivoted uint64
	for _, c := range r.Counts {
		pivoted += c
	}

	return r.Permutations - pivoted
}
