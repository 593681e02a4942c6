package banzhaf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votepower/banzhaf"
	"github.com/katalvlaran/votepower/game"
)

// mustGame builds a game whose n and k are taken from the tables.
func mustGame(t testing.TB, weights [][]int64, quotas []int64) *game.Game {
	t.Helper()
	g, err := game.New(len(weights), len(quotas), weights, quotas)
	require.NoError(t, err)

	return g
}

// uniform returns n single-resolution players of weight 1.
func uniform(n int) [][]int64 {
	w := make([][]int64, n)
	for i := range w {
		w[i] = []int64{1}
	}

	return w
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestBanzhaf_NilGame(t *testing.T) {
	_, err := banzhaf.Banzhaf(nil)
	assert.ErrorIs(t, err, banzhaf.ErrNilGame)
}

func TestBanzhaf_BadMaxPlayers(t *testing.T) {
	g := mustGame(t, uniform(3), []int64{2})

	_, err := banzhaf.Banzhaf(g, banzhaf.WithMaxPlayers(0))
	assert.ErrorIs(t, err, banzhaf.ErrBadMaxPlayers)

	_, err = banzhaf.Banzhaf(g, banzhaf.WithMaxPlayers(banzhaf.MaxPlayersLimit+1))
	assert.ErrorIs(t, err, banzhaf.ErrBadMaxPlayers)
}

func TestBanzhaf_TooManyPlayers(t *testing.T) {
	g := mustGame(t, uniform(5), []int64{3})

	res, err := banzhaf.Banzhaf(g, banzhaf.WithMaxPlayers(4))
	assert.ErrorIs(t, err, banzhaf.ErrTooManyPlayers)
	assert.Nil(t, res.Raw)
}

func TestBanzhaf_CanceledBeforeStart(t *testing.T) {
	g := mustGame(t, uniform(4), []int64{3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := banzhaf.Banzhaf(g, banzhaf.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res.Raw, "no partial result on cancellation")
}

func TestBanzhaf_CanceledMidEnumeration(t *testing.T) {
	// 2^28 coalitions cannot be swept in 5ms; the deadline must be seen
	// by the stride check, not the one before the first mask
	const n = 28
	g := mustGame(t, uniform(n), []int64{n})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	res, err := banzhaf.Banzhaf(g, banzhaf.WithContext(ctx), banzhaf.WithMaxPlayers(n))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, res.Raw, "no partial result on cancellation")
}

func TestBanzhaf_NilContextIgnored(t *testing.T) {
	g := mustGame(t, uniform(3), []int64{2})
	//nolint:staticcheck // nil must fall back to Background
	res, err := banzhaf.Banzhaf(g, banzhaf.WithContext(nil))
	require.NoError(t, err)
	assert.Len(t, res.Raw, 3)
}

// ------------------------------------------------------------------------
// 2. Worked examples
// ------------------------------------------------------------------------

func TestBanzhaf_Majority(t *testing.T) {
	g := mustGame(t, uniform(3), []int64{2})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 2, 2}, res.Raw)
	assert.Equal(t, []string{"0.500000", "0.500000", "0.500000"}, res.Normalized)

	// normalized values sum to 1.5 here; only Shares sums to one
	assert.Equal(t, uint64(6), res.TotalSwings())
	assert.Equal(t, []string{"0.333333", "0.333333", "0.333333"}, res.Shares())
}

func TestBanzhaf_Dictator(t *testing.T) {
	g := mustGame(t, [][]int64{{5}, {1}, {1}}, []int64{5})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 0, 0}, res.Raw)
	assert.Equal(t, []string{"1.000000", "0.000000", "0.000000"}, res.Normalized)
}

func TestBanzhaf_MultiResolutionIsIntersection(t *testing.T) {
	// resolution 0 is met by player 0 alone, resolution 1 by player 1 or 2
	g := mustGame(t, [][]int64{{1, 0}, {0, 1}, {0, 1}}, []int64{1, 1})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 1, 1}, res.Raw)
	assert.Equal(t, []string{"0.750000", "0.250000", "0.250000"}, res.Normalized)
}

func TestBanzhaf_WeightedMajority(t *testing.T) {
	// [4; 3, 2, 1, 1]: winning minimal coalitions {0,1}, {0,2}, {0,3}, {1,2,3}
	g := mustGame(t, [][]int64{{3}, {2}, {1}, {1}}, []int64{4})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, []uint64{6, 2, 2, 2}, res.Raw)
	assert.Equal(t, []string{"0.750000", "0.250000", "0.250000", "0.250000"}, res.Normalized)
}

func TestBanzhaf_UnanimityRoundsHalfUp(t *testing.T) {
	// each player swings only for "everyone else": 1/2^7 = 0.0078125
	g := mustGame(t, uniform(8), []int64{8})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	for i, v := range res.Normalized {
		assert.Equal(t, uint64(1), res.Raw[i])
		assert.Equal(t, "0.007813", v, "player %d", i)
	}
}

// ------------------------------------------------------------------------
// 3. Properties and degenerate games
// ------------------------------------------------------------------------

func TestBanzhaf_SymmetricPlayersEqual(t *testing.T) {
	// players 1 and 3 share a row, so do players 0 and 4
	g := mustGame(t, [][]int64{{2, 1}, {3, 0}, {1, 4}, {3, 0}, {2, 1}}, []int64{6, 3})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, res.Normalized[1], res.Normalized[3])
	assert.Equal(t, res.Normalized[0], res.Normalized[4])
}

func TestBanzhaf_SinglePlayer(t *testing.T) {
	g := mustGame(t, [][]int64{{1}}, []int64{1})

	res, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.000000"}, res.Normalized)
}

func TestBanzhaf_DegenerateGamesYieldZeros(t *testing.T) {
	unwinnable := mustGame(t, uniform(3), []int64{4})
	res, err := banzhaf.Banzhaf(unwinnable)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 0}, res.Raw)

	free := mustGame(t, uniform(3), []int64{0})
	res, err = banzhaf.Banzhaf(free)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 0}, res.Raw)
	assert.Equal(t, []string{"0.000000", "0.000000", "0.000000"}, res.Shares())
}

func TestBanzhaf_Deterministic(t *testing.T) {
	g := mustGame(t, [][]int64{{4, 0}, {3, 2}, {2, 2}, {1, 5}}, []int64{6, 4})

	first, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	second, err := banzhaf.Banzhaf(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
