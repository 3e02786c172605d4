// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poller

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/toketmaster/fault"
)

// record requested sleeps instead of sleeping
func fakeWait(p *Poller) *[]time.Duration {
	waits := make([]time.Duration, 0)
	p.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return &waits
}

func total(waits []time.Duration) time.Duration {
	t := time.Duration(0)
	for _, w := range waits {
		t += w
	}
	return t
}

func TestAlwaysNotFound(t *testing.T) {
	for _, attempts := range []int{1, 2, 5, 60} {
		interval := 250 * time.Millisecond
		p, err := New(attempts, Fixed(interval), nil)
		if !assert.Nil(t, err, "new") {
			continue
		}
		waits := fakeWait(p)

		calls := 0
		result, err := Await(context.Background(), p, func(ctx context.Context) (uint64, error) {
			calls += 1
			return 0, fault.ErrTransactionNotIndexed
		})

		assert.Equal(t, fault.ErrTimeout, err, "%d: timeout", attempts)
		assert.True(t, fault.IsErrTimeout(err), "%d: timeout class", attempts)
		assert.Equal(t, uint64(0), result, "%d: result", attempts)
		assert.Equal(t, attempts, calls, "%d: lookups", attempts)
		assert.Equal(t, attempts-1, len(*waits), "%d: sleeps", attempts)
		assert.Equal(t, time.Duration(attempts-1)*interval, total(*waits), "%d: total wait", attempts)
		assert.Equal(t, total(*waits), p.Budget(), "%d: budget", attempts)
	}
}

func TestFoundAfterRetries(t *testing.T) {
	p, _ := New(10, Fixed(time.Second), nil)
	waits := fakeWait(p)

	calls := 0
	result, err := Await(context.Background(), p, func(ctx context.Context) (uint64, error) {
		calls += 1
		if calls < 4 {
			return 0, fault.ErrTransactionNotIndexed
		}
		return 1234, nil
	})

	assert.Nil(t, err, "error")
	assert.Equal(t, uint64(1234), result, "asset id")
	assert.Equal(t, 4, calls, "lookups")
	assert.Equal(t, 3, len(*waits), "sleeps")
}

func TestOtherErrorStops(t *testing.T) {
	p, _ := New(10, Fixed(time.Second), nil)
	waits := fakeWait(p)

	other := errors.New("connection refused")
	calls := 0
	_, err := Await(context.Background(), p, func(ctx context.Context) (string, error) {
		calls += 1
		if 1 == calls {
			return "", fault.ErrTransactionNotFound
		}
		return "", other
	})

	assert.Equal(t, other, err, "error passed through")
	assert.Equal(t, 2, calls, "lookups")
	assert.Equal(t, 1, len(*waits), "sleeps")

	rejected := &fault.RejectedError{TxId: "X", Reason: "bad"}
	_, err = Await(context.Background(), p, func(ctx context.Context) (string, error) {
		return "", rejected
	})
	assert.Equal(t, rejected, err, "rejected passed through")
}

func TestCancelDuringWait(t *testing.T) {
	p, _ := New(10, Fixed(time.Hour), nil)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	done := make(chan error, 1)
	go func() {
		_, err := Await(ctx, p, func(ctx context.Context) (int, error) {
			calls += 1
			return 0, fault.ErrTransactionNotIndexed
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err, "cancelled")
		assert.Equal(t, 1, calls, "lookups")
	case <-time.After(5 * time.Second):
		t.Fatal("await did not return after cancel")
	}
}

func TestCancelledBeforeStart(t *testing.T) {
	p, _ := New(3, Fixed(time.Millisecond), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Await(ctx, p, func(ctx context.Context) (int, error) {
		calls += 1
		return 1, nil
	})
	assert.Equal(t, context.Canceled, err, "cancelled")
	assert.Equal(t, 0, calls, "lookups")
}

func TestRealSleep(t *testing.T) {
	start := time.Now()
	calls := 0
	_, err := AwaitConfirmed(context.Background(), func(ctx context.Context) (int, error) {
		calls += 1
		return 0, fault.ErrTransactionNotConfirmed
	}, 4, 10*time.Millisecond)
	elapsed := time.Since(start)

	assert.Equal(t, fault.ErrTimeout, err, "timeout")
	assert.Equal(t, 4, calls, "lookups")
	assert.True(t, elapsed >= 30*time.Millisecond, "elapsed: %s", elapsed)
}

func TestInvalidPoller(t *testing.T) {
	_, err := New(0, Fixed(time.Second), nil)
	assert.Equal(t, fault.ErrZeroMaxAttempts, err, "zero attempts")

	_, err = New(1, nil, nil)
	assert.Equal(t, fault.ErrInvalidBackoff, err, "no backoff")

	_, err = AwaitConfirmed(context.Background(), func(ctx context.Context) (int, error) {
		return 0, nil
	}, 0, time.Second)
	assert.Equal(t, fault.ErrZeroMaxAttempts, err, "zero attempts")
}

func TestDefault(t *testing.T) {
	p := Default(nil)
	assert.Equal(t, DefaultMaxAttempts, p.MaxAttempts(), "attempts")
	assert.Equal(t, time.Duration(DefaultMaxAttempts-1)*DefaultInterval, p.Budget(), "budget")
}

func TestLongExponentialWaits(t *testing.T) {
	p, err := New(100, Exponential(time.Second, 2.0, 0), nil)
	if !assert.Nil(t, err, "poller") {
		return
	}
	waits := fakeWait(p)

	_, err = Await(context.Background(), p, func(ctx context.Context) (int, error) {
		return 0, fault.ErrTransactionNotFound
	})
	assert.Equal(t, fault.ErrTimeout, err, "timeout")
	assert.Equal(t, 99, len(*waits), "waits")
	for i, d := range *waits {
		assert.True(t, d >= time.Second, "wait %d: %s", i, d)
	}
	assert.Equal(t, time.Duration(math.MaxInt64), p.Budget(), "saturated budget")
}
