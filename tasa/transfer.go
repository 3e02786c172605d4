// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tasa

import (
	"context"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// TransferResult - ids of the two transactions of a transfer
type TransferResult struct {
	TxId      string `json:"txId"`
	OptInTxId string `json:"optInTxId"`
}

// OptIn - allow holder to receive an asset
//
// a zero amount transfer from holder to itself at the minimum fee
func (w *Workflow) OptIn(ctx context.Context, holder *keypair.KeyPair, assetId uint64) (string, error) {
	if nil == holder {
		return "", fault.ErrRequiredIdentity
	}
	acc, err := holder.Account()
	if nil != err {
		return "", err
	}

	params, err := w.gateway.SuggestedParams(ctx)
	if nil != err {
		return "", err
	}

	tx, err := transactionrecord.NewOptIn(acc, assetId, params)
	if nil != err {
		return "", err
	}

	txId, err := w.submit(ctx, tx, holder)
	if nil != err {
		return "", err
	}
	w.log.Infof("opt-in: %s  asset: %d  holder: %s", txId, assetId, acc)

	if w.confirmOptIn {
		if _, err := w.AwaitConfirmed(ctx, txId); nil != err {
			return "", err
		}
	}
	return txId, nil
}

// Transfer - send one unit of an asset from one identity to another
//
// the receiver opts in first; if that fails nothing is sent and the
// error is a *fault.OptInError
func (w *Workflow) Transfer(ctx context.Context, from *keypair.KeyPair, to *keypair.KeyPair, assetId uint64, fee uint64) (*TransferResult, error) {
	if nil == from {
		return nil, fault.ErrRequiredIdentity
	}
	if nil == to {
		return nil, fault.ErrRequiredReceiver
	}
	if 0 == assetId {
		return nil, fault.ErrRequiredAssetId
	}

	sender, err := from.Account()
	if nil != err {
		return nil, err
	}
	receiver, err := to.Account()
	if nil != err {
		return nil, err
	}

	optInTxId, err := w.OptIn(ctx, to, assetId)
	if nil != err {
		return nil, &fault.OptInError{
			AssetId: assetId,
			Account: receiver.String(),
			Err:     err,
		}
	}

	params, err := w.gateway.SuggestedParams(ctx)
	if nil != err {
		return nil, err
	}

	tx, err := transactionrecord.NewAssetTransfer(sender, receiver, assetId, 1, params, fee)
	if nil != err {
		return nil, err
	}

	txId, err := w.submit(ctx, tx, from)
	if nil != err {
		return nil, err
	}
	w.log.Infof("transfer: %s  asset: %d  from: %s  to: %s", txId, assetId, sender, receiver)

	return &TransferResult{
		TxId:      txId,
		OptInTxId: optInTxId,
	}, nil
}
