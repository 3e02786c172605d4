// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package poller - wait for the ledger to catch up
//
// A lookup is repeated while it reports that its item is not found,
// sleeping between attempts according to a backoff policy.  Any other
// error ends the wait at once.  No sleep follows the final attempt, so
// a fixed interval waits at most (attempts-1)*interval in total.
package poller

import (
	"context"
	"math"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/toketmaster/fault"
)

// Poller - bounded retry of a lookup
type Poller struct {
	maxAttempts int
	backoff     Backoff
	log         *logger.L

	wait func(ctx context.Context, d time.Duration) error
}

// New - a poller making at most maxAttempts lookups
//
// log may be nil
func New(maxAttempts int, backoff Backoff, log *logger.L) (*Poller, error) {
	if maxAttempts <= 0 {
		return nil, fault.ErrZeroMaxAttempts
	}
	if nil == backoff {
		return nil, fault.ErrInvalidBackoff
	}
	return &Poller{
		maxAttempts: maxAttempts,
		backoff:     backoff,
		log:         log,
		wait:        sleep,
	}, nil
}

// NewFromConfig - a poller from the configuration file section
func NewFromConfig(config Config, log *logger.L) (*Poller, error) {
	backoff, err := config.Backoff()
	if nil != err {
		return nil, err
	}
	maxAttempts := config.MaxAttempts
	if 0 == maxAttempts {
		maxAttempts = DefaultMaxAttempts
	}
	return New(maxAttempts, backoff, log)
}

// Default - once a second for thirty attempts
func Default(log *logger.L) *Poller {
	p, err := New(DefaultMaxAttempts, Fixed(DefaultInterval), log)
	fault.PanicIfError("default poller", err)
	return p
}

// MaxAttempts - number of lookups before giving up
func (p *Poller) MaxAttempts() int {
	return p.maxAttempts
}

// Backoff - the delay policy
func (p *Poller) Backoff() Backoff {
	return p.backoff
}

// Budget - the longest total time spent sleeping
func (p *Poller) Budget() time.Duration {
	total := time.Duration(0)
	for failures := 1; failures < p.maxAttempts; failures += 1 {
		d := p.backoff.Delay(failures)
		if d > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += d
	}
	return total
}

// Await - repeat lookup until it finds its item
//
// fails with fault.ErrTimeout after MaxAttempts not found results and
// with ctx.Err() if the context ends first
func Await[T any](ctx context.Context, p *Poller, lookup func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 1; attempt <= p.maxAttempts; attempt += 1 {
		if err := ctx.Err(); nil != err {
			return zero, err
		}

		result, err := lookup(ctx)
		if nil == err {
			return result, nil
		}
		if !fault.IsErrNotFound(err) {
			return zero, err
		}

		if attempt == p.maxAttempts {
			break
		}

		delay := p.backoff.Delay(attempt)
		if nil != p.log {
			p.log.Debugf("not found: %s  retrying after %s (attempt: %d of %d)", err, delay, attempt, p.maxAttempts)
		}
		if err := p.wait(ctx, delay); nil != err {
			return zero, err
		}
	}

	if nil != p.log {
		p.log.Warnf("gave up after %d attempts", p.maxAttempts)
	}
	return zero, fault.ErrTimeout
}

// AwaitConfirmed - repeat lookup at a fixed interval
func AwaitConfirmed[T any](ctx context.Context, lookup func(ctx context.Context) (T, error), maxAttempts int, interval time.Duration) (T, error) {
	var zero T
	if interval < 0 {
		return zero, fault.ErrZeroInterval
	}
	p, err := New(maxAttempts, Fixed(interval), nil)
	if nil != err {
		return zero, err
	}
	return Await(ctx, p, lookup)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
