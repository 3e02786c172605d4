// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped into classes so callers can branch on the kind of failure:
// invalid input, not found (retryable by the poller), timeout,
// process failures, rejections by the network and opt-in failures.
package fault
