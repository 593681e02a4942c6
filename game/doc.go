// Package game models a multi-dimensional weighted voting game and answers
// the one question every power index asks: does a coalition win?
//
// What:
//
//   - Game: n players, k independent weighted resolutions. Player i
//     contributes a non-negative integer weight to every resolution j, and
//     resolution j has a non-negative quota.
//   - Coalition: a set of players encoded as a 64-bit mask (bit i ⇔ player i).
//   - Wins: a coalition wins iff, for every resolution, the summed weight of
//     its members reaches that resolution's quota. Meeting some quotas but not
//     all is losing: the game is the intersection of its k resolutions.
//
// Why:
//
//   - Double-majority councils, shareholder votes with per-class thresholds,
//     multi-criteria committee rules: all reduce to "meet every quota at once".
//
// Complexity:
//
//   - New:          O(n·k) (validation and deep copy)
//   - Wins:         O(n·k), no allocations, early exit on the first unmet quota
//   - MeetsQuotas:  O(k)
//   - Accumulate /
//     Retract:      O(k)
//
// Errors:
//
//   - ErrNoPlayers          n ≤ 0
//   - ErrNoResolutions      k ≤ 0
//   - ErrTooManyPlayers     n exceeds MaxPlayers (coalition mask width)
//   - ErrDimensionMismatch  weights is not n×k or quotas is not length k
//   - ErrNegativeWeight     some weights[i][j] < 0
//   - ErrNegativeQuota      some quotas[j] < 0
//   - ErrGrandCoalitionLoses, ErrEmptyCoalitionWins from CheckProper
//
// A Game is immutable after New returns, so it may be shared freely between
// goroutines and between computations.
package game
