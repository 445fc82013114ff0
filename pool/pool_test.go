package pool_test

import (
	"testing"

	"github.com/katalvlaran/elimorder/pool"
	"github.com/stretchr/testify/require"
)

func TestAcquireReleaseRoundTrip(t *testing.T) {
	p, err := pool.NewPool(4, nil, 0)
	require.NoError(t, err)

	a, err := p.Acquire(7, -1)
	require.NoError(t, err)
	b, err := p.Acquire(9, 2)
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	require.Equal(t, 7, p.At(a).Neighbor)
	require.Equal(t, 9, p.At(b).Neighbor)
	require.Equal(t, 2, p.At(b).Iteration)

	p.Release(a)
	p.Release(b)

	// Capacity 4, two released -> two more acquisitions must still succeed
	// without growth.
	_, err = p.Acquire(1, -1)
	require.NoError(t, err)
	_, err = p.Acquire(2, -1)
	require.NoError(t, err)
}

func TestExhaustionWithoutExtenderIsFatal(t *testing.T) {
	p, err := pool.NewPool(1, nil, 0)
	require.NoError(t, err)

	_, err = p.Acquire(0, -1)
	require.NoError(t, err)

	_, err = p.Acquire(1, -1)
	require.ErrorIs(t, err, pool.ErrPoolExhausted)
}

func TestExtenderGrowsArenaUpToMaxBlocks(t *testing.T) {
	calls := 0
	extend := func() ([]pool.Record, error) {
		calls++
		return make([]pool.Record, 2), nil
	}
	p, err := pool.NewPool(1, extend, 2)
	require.NoError(t, err)

	// Consume initial capacity (1) plus two blocks of 2 = 5 total.
	for i := 0; i < 5; i++ {
		_, err = p.Acquire(i, -1)
		require.NoErrorf(t, err, "acquire #%d", i)
	}
	require.Equal(t, 2, calls)

	// A sixth acquisition exceeds MaxBlocks (2 already used) -> fatal.
	_, err = p.Acquire(99, -1)
	require.ErrorIs(t, err, pool.ErrPoolExhausted)
}

func TestNewPoolRejectsNonPositiveCapacity(t *testing.T) {
	_, err := pool.NewPool(0, nil, 0)
	require.ErrorIs(t, err, pool.ErrInvalidCapacity)
}

func TestWorstCaseFill(t *testing.T) {
	require.Equal(t, 0, pool.WorstCaseFill(0))
	require.Equal(t, 0, pool.WorstCaseFill(1))
	require.Equal(t, 1, pool.WorstCaseFill(2))
	require.Equal(t, 6, pool.WorstCaseFill(4))
	require.Equal(t, 45, pool.WorstCaseFill(10))
}
