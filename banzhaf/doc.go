// Package banzhaf computes the Banzhaf power index of a multi-dimensional
// weighted voting game by brute-force coalition enumeration.
//
// What:
//
//   - A player i is a swing for coalition S (i ∉ S) when S loses and
//     S ∪ {i} wins. Raw[i] counts those coalitions.
//   - Normalized[i] = Raw[i] / 2^(n-1): the fraction of the 2^(n-1)
//     coalitions not containing i for which i is a swing. Values are
//     formatted with six fractional digits.
//   - Normalized values do not, in general, sum to 1. That is the nature of
//     the index, not an error; Shares gives the sum-to-one variant.
//
// Algorithm:
//  1. For every mask from 0 to 2^n − 1, evaluate Wins(mask) once.
//  2. A winning mask cannot produce swings; skip it.
//  3. For every i ∉ mask, test Wins(mask ∪ {i}); count a swing on success.
//
// Complexity:
//
//   - Time:   O(2^n · n · k)
//   - Memory: O(n)
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked every 4096 coalitions.
//   - WithMaxPlayers(m)     refuse games with n > m before enumerating.
//
// Errors:
//
//   - ErrNilGame            game pointer is nil
//   - ErrBadMaxPlayers      MaxPlayers outside [1, MaxPlayersLimit]
//   - ErrTooManyPlayers     n > MaxPlayers
//   - context.Canceled / context.DeadlineExceeded
package banzhaf
