// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tasa - issue and transfer single-copy ticket assets
//
// A Workflow builds asset transactions for an identity, signs them and
// hands them to a ledger.Gateway.  Submission does not wait for
// confirmation; the asset id of an issue is found afterwards through
// the indexer, retried by the workflow's poller.
package tasa

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/poller"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// Workflow - asset operations against one ledger
//
// holds no mutable state and is safe for concurrent use
type Workflow struct {
	gateway      ledger.Gateway
	poller       *poller.Poller
	log          *logger.L
	confirmOptIn bool
}

// New - create a workflow
//
// a nil poller uses poller.Default; when confirmOptIn is set a
// transfer waits for its opt-in to be confirmed before sending
func New(gateway ledger.Gateway, p *poller.Poller, log *logger.L, confirmOptIn bool) (*Workflow, error) {
	if nil == gateway {
		return nil, fault.ErrMissingParameters
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == p {
		p = poller.Default(log)
	}
	return &Workflow{
		gateway:      gateway,
		poller:       p,
		log:          log,
		confirmOptIn: confirmOptIn,
	}, nil
}

// Poller - the poller used by the Await operations
func (w *Workflow) Poller() *poller.Poller {
	return w.poller
}

// sign with the identity's key and submit
func (w *Workflow) submit(ctx context.Context, tx transactionrecord.Transaction, signer *keypair.KeyPair) (string, error) {
	privateKey, err := signer.PrivateKey()
	if nil != err {
		return "", err
	}

	signed, err := transactionrecord.Sign(tx, privateKey)
	if nil != err {
		return "", err
	}

	w.log.Debugf("submit: %s  type: %s  sender: %s  signer: %s", signed.TxId, tx.Type(), tx.GetSender(), signed.Signer)

	txId, err := w.gateway.Submit(ctx, signed)
	if nil != err {
		w.log.Warnf("submit: %s  error: %s", signed.TxId, err)
		return "", err
	}
	return txId, nil
}

// AwaitConfirmed - wait until a transaction is in a block
//
// a transaction dropped from the pool ends the wait with a
// *fault.RejectedError
func (w *Workflow) AwaitConfirmed(ctx context.Context, txId string) (*ledger.PendingStatus, error) {
	if err := checkTxId(txId); nil != err {
		return nil, err
	}
	return poller.Await(ctx, w.poller, func(ctx context.Context) (*ledger.PendingStatus, error) {
		status, err := w.gateway.PendingStatus(ctx, txId)
		if nil != err {
			return nil, err
		}
		if "" != status.PoolError {
			return nil, &fault.RejectedError{
				TxId:   txId,
				Reason: status.PoolError,
			}
		}
		if !status.IsConfirmed() {
			return nil, fault.ErrTransactionNotConfirmed
		}
		return status, nil
	})
}

// CreatedAsset - parameters of an asset as recorded against its creator
func (w *Workflow) CreatedAsset(ctx context.Context, creator string, assetId uint64) (*ledger.CreatedAsset, error) {
	info, err := w.gateway.AccountInfo(ctx, creator)
	if nil != err {
		return nil, err
	}
	created, found := info.CreatedAsset(assetId)
	if !found {
		return nil, fault.ErrAssetNotFound
	}
	return &created, nil
}

// Holding - amount of an asset held by an account
func (w *Workflow) Holding(ctx context.Context, address string, assetId uint64) (*ledger.AssetHolding, error) {
	info, err := w.gateway.AccountInfo(ctx, address)
	if nil != err {
		return nil, err
	}
	holding, found := info.Holding(assetId)
	if !found {
		return nil, fault.ErrHoldingNotFound
	}
	return &holding, nil
}

func checkTxId(txId string) error {
	if "" == txId {
		return fault.ErrRequiredTransactionId
	}
	if !transactionrecord.ValidTxId(txId) {
		return fault.ErrInvalidTransactionId
	}
	return nil
}
