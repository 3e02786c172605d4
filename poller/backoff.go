// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package poller

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bitmark-inc/toketmaster/fault"
)

// Backoff - delay to wait after a given number of failed attempts
type Backoff interface {
	Delay(failures int) time.Duration
	fmt.Stringer
}

// longest delay when no maximum is set
const longestDelay = time.Duration(math.MaxInt64)

// clamp a computed delay to the maximum, or to the longest delay
func bounded(d float64, maximum time.Duration) time.Duration {
	limit := longestDelay
	if maximum > 0 {
		limit = maximum
	}
	if d >= float64(limit) {
		return limit
	}
	return time.Duration(d)
}

type fixed struct {
	interval time.Duration
}

// Fixed - the same interval between every attempt
func Fixed(interval time.Duration) Backoff {
	return &fixed{interval: interval}
}

func (f *fixed) Delay(failures int) time.Duration {
	return f.interval
}

func (f *fixed) String() string {
	return fmt.Sprintf("fixed(%s)", f.interval)
}

type linear struct {
	initial time.Duration
	step    time.Duration
	maximum time.Duration
}

// Linear - grow the interval by a step after each failure up to a maximum
func Linear(initial time.Duration, step time.Duration, maximum time.Duration) Backoff {
	return &linear{initial: initial, step: step, maximum: maximum}
}

func (l *linear) Delay(failures int) time.Duration {
	if failures < 1 {
		failures = 1
	}
	return bounded(float64(l.initial)+float64(failures-1)*float64(l.step), l.maximum)
}

func (l *linear) String() string {
	return fmt.Sprintf("linear(%s+%s max %s)", l.initial, l.step, l.maximum)
}

type exponential struct {
	initial time.Duration
	factor  float64
	maximum time.Duration
}

// Exponential - multiply the interval by a factor after each failure
// up to a maximum
func Exponential(initial time.Duration, factor float64, maximum time.Duration) Backoff {
	if factor < 1.0 {
		factor = 1.0
	}
	return &exponential{initial: initial, factor: factor, maximum: maximum}
}

func (e *exponential) Delay(failures int) time.Duration {
	d := float64(e.initial)
	for i := 1; i < failures && d < float64(longestDelay); i += 1 {
		d *= e.factor
	}
	return bounded(d, e.maximum)
}

func (e *exponential) String() string {
	return fmt.Sprintf("exponential(%s*%g max %s)", e.initial, e.factor, e.maximum)
}

// Config - poll policy from the configuration file
type Config struct {
	Policy      string  `gluamapper:"policy" json:"policy"`
	MaxAttempts int     `gluamapper:"attempts" json:"attempts"`
	Interval    string  `gluamapper:"interval" json:"interval"`
	Step        string  `gluamapper:"step" json:"step"`
	Factor      float64 `gluamapper:"factor" json:"factor"`
	Maximum     string  `gluamapper:"maximum" json:"maximum"`
}

// default poll policy: once a second for thirty seconds
const (
	DefaultPolicy      = "fixed"
	DefaultMaxAttempts = 30
	DefaultInterval    = time.Second
)

// DefaultConfig - the documented bounded default
func DefaultConfig() Config {
	return Config{
		Policy:      DefaultPolicy,
		MaxAttempts: DefaultMaxAttempts,
		Interval:    DefaultInterval.String(),
	}
}

// Backoff - build the backoff described by the configuration
func (c Config) Backoff() (Backoff, error) {
	interval, err := parseDuration(c.Interval, DefaultInterval)
	if nil != err {
		return nil, err
	}
	if interval <= 0 {
		return nil, fault.ErrZeroInterval
	}
	step, err := parseDuration(c.Step, interval)
	if nil != err {
		return nil, err
	}
	maximum, err := parseDuration(c.Maximum, 0)
	if nil != err {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(c.Policy)) {
	case "", "fixed":
		return Fixed(interval), nil
	case "linear":
		return Linear(interval, step, maximum), nil
	case "exponential":
		factor := c.Factor
		if 0 == factor {
			factor = 2.0
		}
		return Exponential(interval, factor, maximum), nil
	default:
		return nil, fault.ErrInvalidBackoff
	}
}

func parseDuration(s string, defaultValue time.Duration) (time.Duration, error) {
	if "" == strings.TrimSpace(s) {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(s)
	if nil != err {
		return 0, fault.ErrInvalidBackoff
	}
	return d, nil
}
