// Package powerindex is the single entry point for computing a power index
// of a weighted voting game.
//
// It routes a validated *game.Game to the banzhaf or shapley calculator
// according to a Kind, applies the player ceiling uniformly, optionally
// insists on a proper game, and returns a Result whose Values are the
// six-digit decimal strings both calculators produce.
//
// Two ways in:
//
//   - Compute(ctx, g, kind, opts...): one synchronous computation.
//   - Engine: a long-lived front for hosts that evaluate many games. It
//     remembers recent results in an LRU cache keyed by a BLAKE2b digest of
//     the whole game, and collapses concurrent identical requests into a
//     single run.
//
// Errors:
//
//   - ErrNilGame         game pointer is nil
//   - ErrUnknownKind     Kind is neither Banzhaf nor Shapley
//   - ErrBadMaxPlayers   MaxPlayers outside [1, limit for the kind]
//   - ErrTooManyPlayers  n exceeds MaxPlayers
//   - game.ErrGrandCoalitionLoses / game.ErrEmptyCoalitionWins with
//     WithRequireProper
//   - context errors from cancellation
package powerindex
