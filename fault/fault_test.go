// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/toketmaster/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrTimeoutOne  = fault.TimeoutError("timeout one")
)

// test that the error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		timeout  bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, true, false},
		{ErrTimeoutOne, false, false, false, false, true},
		{fault.ErrTimeout, false, false, false, false, true},
		{fault.ErrBadSignature, false, true, false, false, false},
		{fault.ErrTransactionNotIndexed, false, false, true, false, false},
		{fault.ErrIndexerNotConfigured, false, false, false, true, false},
		{fault.ErrNotInitialised, false, false, false, true, false},
		{fault.ErrInvalidPhrase, false, true, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrTimeout(err) != e.timeout {
			t.Errorf("%d: expected 'timeout' == %v for err = %v", i, e.timeout, err)
		}
	}
}

func TestWrappedClass(t *testing.T) {
	err := fmt.Errorf("lookup ABC: %w", fault.ErrTransactionNotIndexed)
	assert.True(t, fault.IsErrNotFound(err), "wrapped not found")
	assert.False(t, fault.IsErrInvalid(err), "wrapped not found is invalid")
	assert.True(t, errors.Is(err, fault.ErrTransactionNotIndexed), "errors.Is")
}

func TestRejectedError(t *testing.T) {
	err := error(&fault.RejectedError{TxId: "TXID", Reason: "overspend"})
	assert.True(t, fault.IsErrRejected(err), "rejected")
	assert.Equal(t, "transaction TXID rejected: overspend", err.Error(), "message")

	err = &fault.RejectedError{Reason: "bad request"}
	assert.Equal(t, "transaction rejected: bad request", err.Error(), "message without txid")

	assert.False(t, fault.IsErrRejected(fault.ErrTimeout), "timeout is rejected")
}

func TestOptInError(t *testing.T) {
	cause := &fault.RejectedError{TxId: "OPTIN", Reason: "underflow"}
	err := error(&fault.OptInError{AssetId: 42, Account: "RECEIVER", Err: cause})

	assert.True(t, fault.IsErrOptIn(err), "opt-in")
	assert.True(t, fault.IsErrRejected(err), "cause is visible through unwrap")

	var rejected *fault.RejectedError
	if assert.True(t, errors.As(err, &rejected), "as rejected") {
		assert.Equal(t, "OPTIN", rejected.TxId, "txid")
	}
	assert.Equal(t, "opt-in of RECEIVER to asset 42 failed: transaction OPTIN rejected: underflow", err.Error(), "message")
}
