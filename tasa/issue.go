// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tasa

import (
	"context"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
	"github.com/bitmark-inc/toketmaster/poller"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// Issue - create an asset owned by creator
//
// controllers left unset are given to the creator; a fee of zero pays
// the network minimum.  Returns the transaction id without waiting for
// confirmation
func (w *Workflow) Issue(ctx context.Context, creator *keypair.KeyPair, metadata *transactionrecord.AssetMetadata, fee uint64, controllers transactionrecord.Controllers) (string, error) {
	if nil == creator {
		return "", fault.ErrRequiredIdentity
	}
	sender, err := creator.Account()
	if nil != err {
		return "", err
	}
	return w.IssueAs(ctx, sender, creator, metadata, fee, controllers)
}

// IssueAs - create an asset in the name of sender, signed by signer
//
// the network accepts this only when signer is the sender; any other
// signer produces a transaction the ledger rejects
func (w *Workflow) IssueAs(ctx context.Context, sender *account.Account, signer *keypair.KeyPair, metadata *transactionrecord.AssetMetadata, fee uint64, controllers transactionrecord.Controllers) (string, error) {
	if nil == sender || nil == signer {
		return "", fault.ErrRequiredIdentity
	}
	if nil == metadata {
		return "", fault.ErrMissingParameters
	}

	params, err := w.gateway.SuggestedParams(ctx)
	if nil != err {
		return "", err
	}

	tx, err := transactionrecord.NewAssetConfig(sender, metadata, controllers, params, fee)
	if nil != err {
		return "", err
	}

	txId, err := w.submit(ctx, tx, signer)
	if nil != err {
		return "", err
	}

	w.log.Infof("issue: %s  unit: %q  name: %q  total: %d  creator: %s", txId, metadata.UnitName, metadata.AssetName, metadata.Total, sender)
	return txId, nil
}

// ResolveAssetID - asset id created by a confirmed issue
//
// a single indexer lookup; an issue not yet indexed gives an error of
// the fault.NotFoundError class
func (w *Workflow) ResolveAssetID(ctx context.Context, txId string) (uint64, error) {
	if err := checkTxId(txId); nil != err {
		return 0, err
	}

	record, err := w.gateway.IndexedTransaction(ctx, txId)
	if nil != err {
		return 0, err
	}
	if 0 == record.CreatedAssetIndex {
		return 0, fault.ErrNotAssetCreation
	}
	return record.CreatedAssetIndex, nil
}

// AwaitAssetID - repeat ResolveAssetID until the indexer has the issue
func (w *Workflow) AwaitAssetID(ctx context.Context, txId string) (uint64, error) {
	assetId, err := poller.Await(ctx, w.poller, func(ctx context.Context) (uint64, error) {
		return w.ResolveAssetID(ctx, txId)
	})
	if nil != err {
		return 0, err
	}
	w.log.Infof("issue: %s  asset id: %d", txId, assetId)
	return assetId, nil
}
