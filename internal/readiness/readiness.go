// Package readiness waits for a condition by polling it at a fixed cadence
// until it holds or a deadline passes.
package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPollInterval = time.Second
)

var errNotYet = errors.New("not ready yet")

// Check reports whether the probed thing is ready. The context carries the
// overall deadline of the wait and should be honored by blocking checks.
type Check func(ctx context.Context) bool

type Options struct {
	// Endpoint names what is being probed, it only shows up in logs and errors.
	Endpoint     string
	Timeout      time.Duration
	PollInterval time.Duration
	InitialDelay time.Duration
}

type NotReadyError struct {
	Endpoint string
	Timeout  time.Duration
	Attempts int
	Err      error
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("%s did not start responding within %s (%d attempts): %s", e.Endpoint, e.Timeout,
		e.Attempts, e.Err)
}

func (e *NotReadyError) Unwrap() error {
	return e.Err
}

// WaitFor calls check until it returns true. The first call happens right
// after opts.InitialDelay, the following ones every opts.PollInterval. A check
// that panics counts as not ready. Once opts.Timeout has elapsed, or ctx is
// done, WaitFor gives up with a *NotReadyError.
func WaitFor(ctx context.Context, check Check, opts Options) error {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	attempts := 0
	notReady := func(cause error) error {
		return &NotReadyError{
			Endpoint: opts.Endpoint,
			Timeout:  opts.Timeout,
			Attempts: attempts,
			Err:      cause,
		}
	}

	if opts.InitialDelay > 0 {
		timer := time.NewTimer(opts.InitialDelay)
		select {
		case <-deadlineCtx.Done():
			timer.Stop()

			return notReady(deadlineCtx.Err())
		case <-timer.C:
		}
	}

	operation := func() error {
		attempts++
		if safeCheck(deadlineCtx, check) {
			return nil
		}

		return errNotYet
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(opts.PollInterval), deadlineCtx)

	err := backoff.RetryNotify(operation, b, func(_ error, next time.Duration) {
		log.Debugf("%s not ready after %d attempts, retrying in %s", opts.Endpoint, attempts, next)
	})
	if err != nil {
		if ctxErr := deadlineCtx.Err(); ctxErr != nil {
			err = ctxErr
		}

		return notReady(err)
	}

	log.Debugf("%s ready after %d attempts", opts.Endpoint, attempts)

	return nil
}

func safeCheck(ctx context.Context, check Check) (ready bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("readiness check panicked: %v", r)

			ready = false
		}
	}()

	return check(ctx)
}
