package readiness

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForEventuallyReady(t *testing.T) {
	const failures = 3

	calls := 0
	check := func(context.Context) bool {
		calls++

		return calls > failures
	}

	err := WaitFor(context.Background(), check, Options{
		Endpoint:     "http://marathon:8080",
		Timeout:      2 * time.Second,
		PollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, failures+1, calls)
}

func TestWaitForReadyOnFirstCall(t *testing.T) {
	calls := 0
	start := time.Now()

	err := WaitFor(context.Background(), func(context.Context) bool {
		calls++

		return true
	}, Options{Timeout: time.Second, PollInterval: 500 * time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestWaitForTimesOut(t *testing.T) {
	const (
		timeout  = 150 * time.Millisecond
		interval = 20 * time.Millisecond
		slack    = 100 * time.Millisecond
	)

	calls := 0
	start := time.Now()

	err := WaitFor(context.Background(), func(context.Context) bool {
		calls++

		return false
	}, Options{Endpoint: "http://10.0.0.2:8080", Timeout: timeout, PollInterval: interval})

	elapsed := time.Since(start)

	var notReady *NotReadyError
	require.True(t, errors.As(err, &notReady))
	assert.Equal(t, "http://10.0.0.2:8080", notReady.Endpoint)
	assert.Equal(t, calls, notReady.Attempts)
	assert.Contains(t, err.Error(), "http://10.0.0.2:8080")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, timeout+interval+slack)
	assert.Greater(t, calls, 1)
}

func TestWaitForPanickingCheckCountsAsNotReady(t *testing.T) {
	calls := 0

	err := WaitFor(context.Background(), func(context.Context) bool {
		calls++
		if calls < 3 {
			panic("connection refused")
		}

		return true
	}, Options{Timeout: time.Second, PollInterval: 5 * time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWaitForInitialDelay(t *testing.T) {
	const delay = 50 * time.Millisecond

	var firstCall time.Duration

	start := time.Now()

	err := WaitFor(context.Background(), func(context.Context) bool {
		firstCall = time.Since(start)

		return true
	}, Options{Timeout: time.Second, PollInterval: 5 * time.Millisecond, InitialDelay: delay})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, firstCall, delay)
}

func TestWaitForParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := WaitFor(ctx, func(context.Context) bool {
		calls++
		if calls == 2 {
			cancel()
		}

		return false
	}, Options{Timeout: 5 * time.Second, PollInterval: 5 * time.Millisecond})

	var notReady *NotReadyError
	require.True(t, errors.As(err, &notReady))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWaitForCheckSeesDeadline(t *testing.T) {
	err := WaitFor(context.Background(), func(ctx context.Context) bool {
		_, ok := ctx.Deadline()

		return ok
	}, Options{Timeout: time.Second})

	assert.NoError(t, err)
}
