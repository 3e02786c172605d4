// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"crypto/sha512"
	"encoding/base32"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
)

// domain separation prefix of a packed transaction
var txPrefix = []byte("TX")

var txIdEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Pack - canonical bytes that are signed
//
// NOTE: the signature is not part of the packed record, see Sign
func (c *AssetConfig) Pack() (Packed, error) {
	tx, err := c.wire()
	if nil != err {
		return nil, err
	}
	return pack(tx), nil
}

// Pack - canonical bytes that are signed
func (t *AssetTransfer) Pack() (Packed, error) {
	tx, err := t.wire()
	if nil != err {
		return nil, err
	}
	return pack(tx), nil
}

// TxId - the transaction id of a record
func (c *AssetConfig) TxId() (string, error) {
	tx, err := c.wire()
	if nil != err {
		return "", err
	}
	return crypto.TransactionIDString(tx), nil
}

// TxId - the transaction id of a record
func (t *AssetTransfer) TxId() (string, error) {
	tx, err := t.wire()
	if nil != err {
		return "", err
	}
	return crypto.TransactionIDString(tx), nil
}

// ValidTxId - check the shape of a transaction id: base32 text of a
// 32 byte digest
func ValidTxId(txId string) bool {
	b, err := txIdEncoding.DecodeString(txId)
	return nil == err && sha512.Size256 == len(b)
}

func pack(tx types.Transaction) Packed {
	message := append([]byte{}, txPrefix...)
	return append(message, msgpack.Encode(tx)...)
}

func (c *AssetConfig) wire() (types.Transaction, error) {
	if nil == c.Sender {
		return types.Transaction{}, fault.ErrMissingParameters
	}
	if err := c.Metadata.Validate(); nil != err {
		return types.Transaction{}, err
	}

	params := types.AssetParams{
		Total:         c.Metadata.Total,
		Decimals:      c.Metadata.Decimals,
		DefaultFrozen: c.Metadata.DefaultFrozen,
		UnitName:      c.Metadata.UnitName,
		AssetName:     c.Metadata.AssetName,
		URL:           c.Metadata.URL,
		Manager:       wireAddress(c.Manager),
		Reserve:       wireAddress(c.Reserve),
		Freeze:        wireAddress(c.Freeze),
		Clawback:      wireAddress(c.Clawback),
	}
	copy(params.MetadataHash[:], c.Metadata.MetadataHash)

	return types.Transaction{
		Type:   types.AssetConfigTx,
		Header: wireHeader(c.Sender, &c.Header),
		AssetConfigTxnFields: types.AssetConfigTxnFields{
			AssetParams: params,
		},
	}, nil
}

func (t *AssetTransfer) wire() (types.Transaction, error) {
	if nil == t.Sender || nil == t.Receiver {
		return types.Transaction{}, fault.ErrMissingParameters
	}
	if 0 == t.AssetId {
		return types.Transaction{}, fault.ErrRequiredAssetId
	}
	return types.Transaction{
		Type:   types.AssetTransferTx,
		Header: wireHeader(t.Sender, &t.Header),
		AssetTransferTxnFields: types.AssetTransferTxnFields{
			XferAsset:     types.AssetIndex(t.AssetId),
			AssetAmount:   t.Amount,
			AssetReceiver: wireAddress(t.Receiver),
		},
	}, nil
}

func wireHeader(sender *account.Account, h *Header) types.Header {
	return types.Header{
		Sender:      wireAddress(sender),
		Fee:         types.MicroAlgos(h.Fee),
		FirstValid:  types.Round(h.FirstValid),
		LastValid:   types.Round(h.LastValid),
		Note:        h.Note,
		GenesisID:   h.GenesisId,
		GenesisHash: types.Digest(h.GenesisHash),
	}
}

// empty role is the zero address, which the encoder omits
func wireAddress(acc *account.Account) types.Address {
	if nil == acc {
		return types.Address{}
	}
	return acc.Address()
}
