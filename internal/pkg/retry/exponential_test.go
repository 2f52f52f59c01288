package retry

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/logger"
)

func newTestRetrier(t *testing.T, cfg Config) (*Retrier, *[]time.Duration) {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "debug", Output: &bytes.Buffer{}}, nil)
	require.NoError(t, err)

	r := New(cfg, zl)
	var slept []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	return r, &slept
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter = false
	r, slept := newTestRetrier(t, cfg)

	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("nats: timeout")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *slept)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	r, _ := newTestRetrier(t, cfg)

	base := errors.New("unavailable")
	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return base
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, 3, calls)
}

func TestExecute_PermanentStopsImmediately(t *testing.T) {
	r, slept := newTestRetrier(t, DefaultConfig())

	base := errors.New("bad payload")
	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return Permanent(base)
	})

	assert.Equal(t, base, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *slept)
	assert.Nil(t, Permanent(nil))
}

func TestExecute_CancelledContext(t *testing.T) {
	r, _ := newTestRetrier(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(context.Context) error {
		t.Fatal("must not be called")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CapsAtMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter = false
	cfg.MaxDelay = 300 * time.Millisecond
	r, _ := newTestRetrier(t, cfg)

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(5))

	cfg.Jitter = true
	r, _ = newTestRetrier(t, cfg)
	d := r.calculateDelay(0)
	assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	assert.LessOrEqual(t, d, 110*time.Millisecond)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("x")))
	assert.False(t, IsRetryable(Permanent(errors.New("x"))))
	assert.False(t, IsRetryable(context.DeadlineExceeded))
}
