// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algod

import (
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// JSON shapes of the REST replies; []byte fields arrive base64 encoded

type errorReply struct {
	Message string `json:"message"`
}

type paramsReply struct {
	ConsensusVersion string `json:"consensus-version"`
	Fee              uint64 `json:"fee"`
	GenesisHash      []byte `json:"genesis-hash"`
	GenesisId        string `json:"genesis-id"`
	LastRound        uint64 `json:"last-round"`
	MinFee           uint64 `json:"min-fee"`
}

type submitReply struct {
	TxId string `json:"txId"`
}

type pendingReply struct {
	ConfirmedRound uint64 `json:"confirmed-round"`
	AssetIndex     uint64 `json:"asset-index"`
	PoolError      string `json:"pool-error"`
}

type assetParamsReply struct {
	Creator       string `json:"creator"`
	Decimals      uint32 `json:"decimals"`
	DefaultFrozen bool   `json:"default-frozen"`
	Total         uint64 `json:"total"`
	UnitName      string `json:"unit-name"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	MetadataHash  []byte `json:"metadata-hash"`
	Manager       string `json:"manager"`
	Reserve       string `json:"reserve"`
	Freeze        string `json:"freeze"`
	Clawback      string `json:"clawback"`
}

func (p assetParamsReply) params() ledger.AssetParams {
	return ledger.AssetParams{
		Creator:       p.Creator,
		Total:         p.Total,
		Decimals:      p.Decimals,
		DefaultFrozen: p.DefaultFrozen,
		UnitName:      p.UnitName,
		AssetName:     p.Name,
		URL:           p.URL,
		MetadataHash:  p.MetadataHash,
		Manager:       p.Manager,
		Reserve:       p.Reserve,
		Freeze:        p.Freeze,
		Clawback:      p.Clawback,
	}
}

type accountReply struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
	Round   uint64 `json:"round"`
	Assets  []struct {
		AssetId  uint64 `json:"asset-id"`
		Amount   uint64 `json:"amount"`
		IsFrozen bool   `json:"is-frozen"`
	} `json:"assets"`
	CreatedAssets []struct {
		Index  uint64           `json:"index"`
		Params assetParamsReply `json:"params"`
	} `json:"created-assets"`
}

func (a *accountReply) info() *ledger.AccountInfo {
	info := &ledger.AccountInfo{
		Address:       a.Address,
		Amount:        a.Amount,
		Round:         a.Round,
		Assets:        make([]ledger.AssetHolding, 0, len(a.Assets)),
		CreatedAssets: make([]ledger.CreatedAsset, 0, len(a.CreatedAssets)),
	}
	for _, h := range a.Assets {
		info.Assets = append(info.Assets, ledger.AssetHolding{
			AssetId:  h.AssetId,
			Amount:   h.Amount,
			IsFrozen: h.IsFrozen,
		})
	}
	for _, c := range a.CreatedAssets {
		info.CreatedAssets = append(info.CreatedAssets, ledger.CreatedAsset{
			Index:  c.Index,
			Params: c.Params.params(),
		})
	}
	return info
}

type indexedReply struct {
	CurrentRound uint64             `json:"current-round"`
	Transaction  indexedTransaction `json:"transaction"`
}

type indexedTransaction struct {
	Id                string `json:"id"`
	TxType            string `json:"tx-type"`
	Sender            string `json:"sender"`
	ConfirmedRound    uint64 `json:"confirmed-round"`
	CreatedAssetIndex uint64 `json:"created-asset-index"`

	AssetConfig *struct {
		AssetId uint64            `json:"asset-id"`
		Params  *assetParamsReply `json:"params"`
	} `json:"asset-config-transaction"`

	AssetTransfer *struct {
		AssetId  uint64 `json:"asset-id"`
		Amount   uint64 `json:"amount"`
		Receiver string `json:"receiver"`
	} `json:"asset-transfer-transaction"`
}

func (t *indexedTransaction) record() ledger.TransactionRecord {
	record := ledger.TransactionRecord{
		TxId:              t.Id,
		Type:              t.TxType,
		Sender:            t.Sender,
		ConfirmedRound:    t.ConfirmedRound,
		CreatedAssetIndex: t.CreatedAssetIndex,
	}
	switch transactionrecord.TxType(t.TxType) {
	case transactionrecord.AssetConfigType:
		if nil != t.AssetConfig && nil != t.AssetConfig.Params {
			params := t.AssetConfig.Params.params()
			if "" == params.Creator {
				params.Creator = t.Sender
			}
			record.AssetParams = &params
		}
	case transactionrecord.AssetTransferType:
		if nil != t.AssetTransfer {
			record.AssetId = t.AssetTransfer.AssetId
			record.Amount = t.AssetTransfer.Amount
			record.Receiver = t.AssetTransfer.Receiver
		}
	}
	return record
}
