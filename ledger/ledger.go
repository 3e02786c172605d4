// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - access to the external ledger
//
// The ledger node and its indexer are reached through a Gateway so the
// workflows can run against a live network, the in-process simulator
// or a mock.
package ledger

import (
	"context"

	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

// Gateway - the operations needed from a ledger node and indexer
//
// lookups of things the ledger does not (yet) know return an error of
// the fault.NotFoundError class; refusals of a submitted transaction
// return *fault.RejectedError
type Gateway interface {
	SuggestedParams(ctx context.Context) (*transactionrecord.Params, error)
	Submit(ctx context.Context, signed *transactionrecord.Signed) (string, error)
	PendingStatus(ctx context.Context, txId string) (*PendingStatus, error)
	AccountInfo(ctx context.Context, address string) (*AccountInfo, error)
	IndexedTransaction(ctx context.Context, txId string) (*TransactionRecord, error)
}

// PendingStatus - node view of a submitted transaction
type PendingStatus struct {
	TxId           string `json:"txId"`
	ConfirmedRound uint64 `json:"confirmedRound"`
	AssetIndex     uint64 `json:"assetIndex,omitempty"`
	PoolError      string `json:"poolError,omitempty"`
}

// IsConfirmed - transaction is in a block
func (s *PendingStatus) IsConfirmed() bool {
	return 0 != s.ConfirmedRound
}

// AssetParams - parameters of a created asset
type AssetParams struct {
	Creator       string `json:"creator"`
	Total         uint64 `json:"total"`
	Decimals      uint32 `json:"decimals"`
	DefaultFrozen bool   `json:"defaultFrozen"`
	UnitName      string `json:"unitName"`
	AssetName     string `json:"assetName"`
	URL           string `json:"url"`
	MetadataHash  []byte `json:"metadataHash,omitempty"`
	Manager       string `json:"manager,omitempty"`
	Reserve       string `json:"reserve,omitempty"`
	Freeze        string `json:"freeze,omitempty"`
	Clawback      string `json:"clawback,omitempty"`
}

// CreatedAsset - an asset created by an account
type CreatedAsset struct {
	Index  uint64      `json:"index"`
	Params AssetParams `json:"params"`
}

// AssetHolding - an account's balance of an asset
type AssetHolding struct {
	AssetId  uint64 `json:"assetId"`
	Amount   uint64 `json:"amount"`
	IsFrozen bool   `json:"isFrozen"`
}

// AccountInfo - balances and assets of an account
type AccountInfo struct {
	Address       string         `json:"address"`
	Amount        uint64         `json:"amount"` // microAlgos
	Round         uint64         `json:"round"`
	Assets        []AssetHolding `json:"assets"`
	CreatedAssets []CreatedAsset `json:"createdAssets"`
}

// Holding - find the holding of an asset
func (a *AccountInfo) Holding(assetId uint64) (AssetHolding, bool) {
	for _, h := range a.Assets {
		if assetId == h.AssetId {
			return h, true
		}
	}
	return AssetHolding{}, false
}

// CreatedAsset - find a created asset
func (a *AccountInfo) CreatedAsset(assetId uint64) (CreatedAsset, bool) {
	for _, c := range a.CreatedAssets {
		if assetId == c.Index {
			return c, true
		}
	}
	return CreatedAsset{}, false
}

// TransactionRecord - indexer view of a confirmed transaction
type TransactionRecord struct {
	TxId              string       `json:"txId"`
	Type              string       `json:"type"`
	Sender            string       `json:"sender"`
	ConfirmedRound    uint64       `json:"confirmedRound"`
	CreatedAssetIndex uint64       `json:"createdAssetIndex,omitempty"`
	AssetParams       *AssetParams `json:"assetParams,omitempty"`
	AssetId           uint64       `json:"assetId,omitempty"`
	Amount            uint64       `json:"amount,omitempty"`
	Receiver          string       `json:"receiver,omitempty"`
}
