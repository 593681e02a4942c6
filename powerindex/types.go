package powerindex

import (
	"errors"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/votepower/banzhaf"
	"github.com/katalvlaran/votepower/shapley"
)

var log = logging.Logger("votepower")

const (
	// DefaultMaxPlayers is the player ceiling applied when none is set.
	DefaultMaxPlayers = 20

	// WarnPlayers is the size above which a computation is logged as slow.
	WarnPlayers = 16
)

var (
	// ErrNilGame indicates that a nil *game.Game was passed in.
	ErrNilGame = errors.New("powerindex: game is nil")

	// ErrUnknownKind indicates an unsupported index selector.
	ErrUnknownKind = errors.New("powerindex: unknown index kind")

	// ErrBadMaxPlayers indicates a ceiling outside the range the selected
	// calculator supports.
	ErrBadMaxPlayers = errors.New("powerindex: MaxPlayers out of range")

	// ErrTooManyPlayers indicates that the game exceeds the configured ceiling.
	ErrTooManyPlayers = errors.New("powerindex: too many players")

	// ErrBadCacheSize indicates a non-positive Engine cache size.
	ErrBadCacheSize = errors.New("powerindex: cache size must be positive")
)

// Option configures a computation.
type Option func(*Options)

// Options holds dispatcher settings shared by both index kinds.
type Options struct {
	// MaxPlayers rejects larger games before any enumeration.
	MaxPlayers int

	// CapMaxPlayers lowers MaxPlayers to the selected calculator's hard
	// limit instead of rejecting it, so one ceiling can serve both kinds.
	CapMaxPlayers bool

	// RequireProper rejects games whose grand coalition loses or whose
	// empty coalition wins.
	RequireProper bool

	// ShapleyMethod selects the Shapley enumeration strategy.
	ShapleyMethod shapley.Method
}

// DefaultOptions returns MaxPlayers = DefaultMaxPlayers without capping, no
// proper-game requirement and the Permutations Shapley method.
func DefaultOptions() Options {
	return Options{
		MaxPlayers:    DefaultMaxPlayers,
		CapMaxPlayers: false,
		RequireProper: false,
		ShapleyMethod: shapley.Permutations,
	}
}

// WithMaxPlayers sets the player ceiling.
func WithMaxPlayers(limit int) Option {
	return func(o *Options) {
		o.MaxPlayers = limit
	}
}

// WithCappedMaxPlayers sets the player ceiling, lowered per kind to the
// calculator's hard limit: 25 admits 25-player Banzhaf games while Shapley
// games stop at shapley.MaxPlayersLimit.
func WithCappedMaxPlayers(limit int) Option {
	return func(o *Options) {
		o.MaxPlayers = limit
		o.CapMaxPlayers = true
	}
}

// WithRequireProper makes degenerate games an error.
func WithRequireProper() Option {
	return func(o *Options) {
		o.RequireProper = true
	}
}

// WithShapleyMethod selects the Shapley enumeration strategy.
func WithShapleyMethod(m shapley.Method) Option {
	return func(o *Options) {
		o.ShapleyMethod = m
	}
}

// limitFor returns the highest ceiling the calculator behind k accepts.
func limitFor(k Kind) int {
	if k == Shapley {
		return shapley.MaxPlayersLimit
	}

	return banzhaf.MaxPlayersLimit
}

// Result is a computed index, indexed by player ordinal.
type Result struct {
	// Kind is the index that was computed.
	Kind Kind

	// Values[i] is player i's index value with six fractional digits:
	// the normalized Banzhaf index or the Shapley value.
	Values []string

	// Raw[i] is the integer numerator behind Values[i]: swing count for
	// Banzhaf, pivotal-order count for Shapley.
	Raw []uint64
}

// clone returns a deep copy so that cached results are never aliased.
func (r Result) clone() Result {
	return Result{
		Kind:   r.Kind,
		Values: append([]string(nil), r.Values...),
		Raw:    append([]uint64(nil), r.Raw...),
	}
}
