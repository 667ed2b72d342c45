package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel2_BothResults(t *testing.T) {
	a, b, err := Parallel2(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (string, error) { return "two", nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
}

func TestParallel2_FirstErrorWins(t *testing.T) {
	sentinel := errors.New("boom")

	a, b, err := Parallel2(context.Background(),
		func(ctx context.Context) (int, error) { return 0, sentinel },
		func(ctx context.Context) (string, error) { return "ignored", nil },
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Zero(t, a)
	assert.Empty(t, b)
}

func TestParallel3_AllResults(t *testing.T) {
	a, b, c, err := Parallel3(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (string, error) { return "two", nil },
		func(ctx context.Context) ([]string, error) { return []string{"three"}, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
	assert.Equal(t, []string{"three"}, c)
}

func TestParallel3_CancelsSiblingsOnError(t *testing.T) {
	sentinel := errors.New("boom")

	var canceled atomic.Bool

	_, _, _, err := Parallel3(context.Background(),
		func(ctx context.Context) (int, error) { return 0, sentinel },
		func(ctx context.Context) (int, error) {
			select {
			case <-ctx.Done():
				canceled.Store(true)
				return 0, ctx.Err()
			case <-time.After(2 * time.Second):
				return 1, nil
			}
		},
		func(ctx context.Context) (int, error) { return 1, nil },
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, canceled.Load())
}

func TestParallel3_RunsConcurrently(t *testing.T) {
	start := time.Now()

	_, _, _, err := Parallel3(context.Background(),
		func(ctx context.Context) (int, error) { time.Sleep(50 * time.Millisecond); return 1, nil },
		func(ctx context.Context) (int, error) { time.Sleep(50 * time.Millisecond); return 2, nil },
		func(ctx context.Context) (int, error) { time.Sleep(50 * time.Millisecond); return 3, nil },
	)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 140*time.Millisecond)
}
