package game

import "errors"

// MaxPlayers is the widest game a Coalition mask can describe.
const MaxPlayers = 63

var (
	// ErrNoPlayers indicates that the number of players is zero or negative.
	ErrNoPlayers = errors.New("game: number of players must be positive")

	// ErrNoResolutions indicates that the number of resolutions is zero or negative.
	ErrNoResolutions = errors.New("game: number of resolutions must be positive")

	// ErrTooManyPlayers indicates that n does not fit into a Coalition mask.
	ErrTooManyPlayers = errors.New("game: too many players for a coalition mask")

	// ErrDimensionMismatch indicates that weights is not an n×k table or
	// quotas does not hold exactly k entries.
	ErrDimensionMismatch = errors.New("game: weights/quotas shape does not match n×k")

	// ErrNegativeWeight indicates a negative player weight.
	ErrNegativeWeight = errors.New("game: weight must be non-negative")

	// ErrNegativeQuota indicates a negative resolution quota.
	ErrNegativeQuota = errors.New("game: quota must be non-negative")

	// ErrGrandCoalitionLoses is reported by CheckProper when the coalition of
	// all players misses at least one quota.
	ErrGrandCoalitionLoses = errors.New("game: grand coalition does not win")

	// ErrEmptyCoalitionWins is reported by CheckProper when every quota is zero,
	// so the empty coalition already wins.
	ErrEmptyCoalitionWins = errors.New("game: empty coalition wins")
)

// Game is an immutable n-player, k-resolution weighted voting game.
//
// Weights are stored row-major in a dense buffer: weight of player i on
// resolution j lives at w[i*k+j].
type Game struct {
	n      int
	k      int
	w      []int64
	quotas []int64
}
