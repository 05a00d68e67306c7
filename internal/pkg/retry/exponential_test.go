package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestRetrier_Execute(t *testing.T) {
	errTransient := errors.New("transient")
	errPermanent := errors.New("permanent")

	tests := []struct {
		name          string
		config        Config
		failures      int
		failWith      error
		expectedCalls int
		expectError   bool
	}{
		{name: "First attempt succeeds", config: fastConfig(2), failures: 0, expectedCalls: 1},
		{name: "Succeeds after retries", config: fastConfig(2), failures: 2, failWith: errTransient, expectedCalls: 3},
		{name: "Exhausts retries", config: fastConfig(2), failures: 5, failWith: errTransient, expectedCalls: 3, expectError: true},
		{
			name: "Non-retryable error stops",
			config: func() Config {
				c := fastConfig(3)
				c.RetryableFunc = func(err error) bool { return !errors.Is(err, errPermanent) }
				return c
			}(),
			failures:      5,
			failWith:      errPermanent,
			expectedCalls: 1,
			expectError:   true,
		},
		{name: "Deadline errors are not retried", config: fastConfig(3), failures: 5, failWith: context.DeadlineExceeded, expectedCalls: 1, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := New(tt.config, nil)

			err := r.Execute(context.Background(), func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectError {
				assert.ErrorIs(t, err, tt.failWith)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := New(fastConfig(3), nil).Execute(ctx, func(context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestRetrier_CalculateDelay(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, nil)

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(2))
}
