package powerindex_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/votepower/powerindex"
)

func TestNewEngine_BadCacheSize(t *testing.T) {
	_, err := powerindex.NewEngine(0)
	assert.ErrorIs(t, err, powerindex.ErrBadCacheSize)
}

func TestEngine_CachesResults(t *testing.T) {
	e, err := powerindex.NewEngine(4)
	require.NoError(t, err)
	ctx := context.Background()
	g := majority(t)

	first, err := e.Compute(ctx, g, powerindex.Shapley)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())

	// callers get private copies: scribbling on one must not reach the cache
	first.Values[0] = "garbage"

	second, err := e.Compute(ctx, g, powerindex.Shapley)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, []string{"0.333333", "0.333333", "0.333333"}, second.Values)

	// another kind is another entry
	_, err = e.Compute(ctx, g, powerindex.Banzhaf)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Len())

	e.Purge()
	assert.Equal(t, 0, e.Len())
}

func TestEngine_ErrorsNotCached(t *testing.T) {
	e, err := powerindex.NewEngine(4, powerindex.WithMaxPlayers(2))
	require.NoError(t, err)

	_, err = e.Compute(context.Background(), majority(t), powerindex.Banzhaf)
	assert.ErrorIs(t, err, powerindex.ErrTooManyPlayers)
	assert.Equal(t, 0, e.Len())

	_, err = e.Compute(context.Background(), nil, powerindex.Banzhaf)
	assert.ErrorIs(t, err, powerindex.ErrNilGame)
}

func TestEngine_EvictsLeastRecent(t *testing.T) {
	e, err := powerindex.NewEngine(1)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = e.Compute(ctx, majority(t), powerindex.Banzhaf)
	require.NoError(t, err)
	_, err = e.Compute(ctx, mustGame(t, [][]int64{{2}, {1}}, []int64{2}), powerindex.Banzhaf)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())
}

func TestEngine_ConcurrentCallersAgree(t *testing.T) {
	e, err := powerindex.NewEngine(8)
	require.NoError(t, err)
	g := mustGame(t, [][]int64{{3}, {2}, {1}, {1}}, []int64{4})

	const callers = 16
	results := make([]powerindex.Result, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.Compute(context.Background(), g, powerindex.Shapley)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"0.500000", "0.166667", "0.166667", "0.166667"}, results[i].Values)
	}
	assert.Equal(t, 1, e.Len())
}

func TestEngine_CanceledCaller(t *testing.T) {
	e, err := powerindex.NewEngine(2)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.Compute(ctx, majority(t), powerindex.Banzhaf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, e.Len())
}
