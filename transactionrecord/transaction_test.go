// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"crypto/sha512"
	"encoding/base32"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

const (
	creatorSecret = "Z0vn6E6/j/vWqpG8+0MqVXWtDLdtB1tILF46SpcSr1oVSndXBIiQtl7UCnKmIaYpeuT0HYDZW8h5XpfRkRXIlA=="
	otherSecret   = "KONd7E3fz4p6ar2FzYDivkcBhDeEQKq/qtCIty9+trR5iyidg86Kz5jTQC9PhM9JGkBEoqalgmhrHzhEU1n1Xg=="
)

func keys(t *testing.T) (*account.PrivateKey, *account.PrivateKey) {
	creator, err := account.PrivateKeyFromBase64(creatorSecret)
	assert.Nil(t, err, "creator key")
	other, err := account.PrivateKeyFromBase64(otherSecret)
	assert.Nil(t, err, "other key")
	return creator, other
}

func testParams() *transactionrecord.Params {
	var hash [32]byte
	hash[0] = 0x01
	return transactionrecord.NewParams(1000, 1000, "sandnet-v1", hash)
}

func TestMetadataValidation(t *testing.T) {
	hash := make([]byte, 32)

	items := []struct {
		m   transactionrecord.AssetMetadata
		err error
	}{
		{transactionrecord.AssetMetadata{UnitName: "TASA", AssetName: "Ticket", URL: "https://example.com", Total: 1}, nil},
		{transactionrecord.AssetMetadata{UnitName: "TASA", Total: 1, Decimals: 19, MetadataHash: hash}, nil},
		{transactionrecord.AssetMetadata{UnitName: "TASA", Total: 0}, fault.ErrZeroTotal},
		{transactionrecord.AssetMetadata{UnitName: "", Total: 1}, fault.ErrRequiredUnitName},
		{transactionrecord.AssetMetadata{UnitName: "TOOLONGUN", Total: 1}, fault.ErrStringTooLong},
		{transactionrecord.AssetMetadata{UnitName: "TASA", AssetName: strings.Repeat("a", 33), Total: 1}, fault.ErrStringTooLong},
		{transactionrecord.AssetMetadata{UnitName: "TASA", URL: strings.Repeat("u", 97), Total: 1}, fault.ErrStringTooLong},
		{transactionrecord.AssetMetadata{UnitName: "TASA", Total: 1, Decimals: 20}, fault.ErrDecimalsTooLarge},
		{transactionrecord.AssetMetadata{UnitName: "TASA", Total: 1, MetadataHash: []byte{1, 2, 3}}, fault.ErrInvalidMetadataHash},
	}

	for i, item := range items {
		m, err := transactionrecord.NewAssetMetadata(item.m)
		assert.Equal(t, item.err, err, "%d: error", i)
		if nil == item.err {
			assert.NotNil(t, m, "%d: metadata", i)
		} else {
			assert.Nil(t, m, "%d: metadata", i)
		}
	}
}

func TestNewTicket(t *testing.T) {
	m, err := transactionrecord.NewTicket("TASA", "Concert", "https://tickets.example.com/1")
	assert.Nil(t, err, "ticket")
	assert.Equal(t, uint64(1), m.Total, "total")
	assert.Equal(t, uint32(0), m.Decimals, "decimals")
}

func TestControllers(t *testing.T) {
	creator, other := keys(t)
	c := creator.Account()
	o := other.Account()

	assert.Equal(t, c, transactionrecord.Controller{}.Resolve(c), "zero value")
	assert.Equal(t, c, transactionrecord.DefaultController().Resolve(c), "default")
	assert.Equal(t, o, transactionrecord.ControllerAccount(o).Resolve(c), "explicit")
	assert.Nil(t, transactionrecord.NoController().Resolve(c), "none")
	assert.True(t, transactionrecord.ControllerAccount(nil).IsDefault(), "nil account")

	m, _ := transactionrecord.NewTicket("TASA", "Ticket", "")
	config, err := transactionrecord.NewAssetConfig(c, m, transactionrecord.Controllers{
		Reserve:  transactionrecord.ControllerAccount(o),
		Clawback: transactionrecord.NoController(),
	}, testParams(), 0)
	if !assert.Nil(t, err, "config") {
		return
	}
	assert.Equal(t, c, config.Manager, "manager")
	assert.Equal(t, o, config.Reserve, "reserve")
	assert.Equal(t, c, config.Freeze, "freeze")
	assert.Nil(t, config.Clawback, "clawback")
}

func TestFees(t *testing.T) {
	creator, _ := keys(t)
	m, _ := transactionrecord.NewTicket("TASA", "Ticket", "")

	config, err := transactionrecord.NewAssetConfig(creator.Account(), m, transactionrecord.Controllers{}, testParams(), 0)
	assert.Nil(t, err, "minimum fee")
	assert.Equal(t, uint64(1000), config.Fee, "minimum fee")

	config, err = transactionrecord.NewAssetConfig(creator.Account(), m, transactionrecord.Controllers{}, testParams(), 2500)
	assert.Nil(t, err, "flat fee")
	assert.Equal(t, uint64(2500), config.Fee, "flat fee")

	_, err = transactionrecord.NewAssetConfig(creator.Account(), m, transactionrecord.Controllers{}, nil, 0)
	assert.Equal(t, fault.ErrMissingParameters, err, "no params")
}

func TestInvalidMetadataLiteral(t *testing.T) {
	creator, _ := keys(t)
	m := &transactionrecord.AssetMetadata{UnitName: "TASA"}
	_, err := transactionrecord.NewAssetConfig(creator.Account(), m, transactionrecord.Controllers{}, testParams(), 0)
	assert.Equal(t, fault.ErrZeroTotal, err, "literal metadata is still validated")
}

func TestTransfers(t *testing.T) {
	creator, other := keys(t)
	params := testParams()

	optIn, err := transactionrecord.NewOptIn(other.Account(), 42, params)
	assert.Nil(t, err, "opt in")
	assert.True(t, optIn.IsOptIn(), "is opt in")
	assert.Equal(t, uint64(1000), optIn.Fee, "opt in fee")

	transfer, err := transactionrecord.NewAssetTransfer(creator.Account(), other.Account(), 42, 1, params, 1000)
	assert.Nil(t, err, "transfer")
	assert.False(t, transfer.IsOptIn(), "transfer is opt in")
	assert.Equal(t, transactionrecord.AssetTransferType, transfer.Type(), "type")

	_, err = transactionrecord.NewAssetTransfer(creator.Account(), other.Account(), 0, 1, params, 1000)
	assert.Equal(t, fault.ErrRequiredAssetId, err, "zero asset")

	_, err = transactionrecord.NewAssetTransfer(creator.Account(), nil, 42, 1, params, 1000)
	assert.Equal(t, fault.ErrRequiredReceiver, err, "no receiver")
}

func TestPack(t *testing.T) {
	creator, other := keys(t)
	m, _ := transactionrecord.NewTicket("TASA", "Ticket", "https://example.com")

	config, _ := transactionrecord.NewAssetConfig(creator.Account(), m, transactionrecord.Controllers{}, testParams(), 0)
	packed, err := config.Pack()
	assert.Nil(t, err, "pack")
	assert.True(t, bytes.HasPrefix(packed, []byte("TX")), "prefix")

	again, _ := config.Pack()
	assert.Equal(t, packed, again, "deterministic")

	txId, err := config.TxId()
	assert.Nil(t, err, "txid")
	assert.Equal(t, 52, len(txId), "txid length")
	assert.True(t, transactionrecord.ValidTxId(txId), "valid txid")

	// the id is the digest of the packed record
	digest := sha512.Sum512_256(packed)
	assert.Equal(t, base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(digest[:]), txId, "digest of packed")

	transfer, _ := transactionrecord.NewAssetTransfer(creator.Account(), other.Account(), 42, 1, testParams(), 0)
	_, err = transfer.Pack()
	assert.Nil(t, err, "pack transfer")
	transferId, _ := transfer.TxId()
	assert.NotEqual(t, txId, transferId, "distinct txid")

	transfer.Amount = 2
	changedId, _ := transfer.TxId()
	assert.NotEqual(t, transferId, changedId, "amount changes txid")

	assert.False(t, transactionrecord.ValidTxId("not-a-txid"), "invalid txid")
}

func TestSign(t *testing.T) {
	creator, other := keys(t)
	m, _ := transactionrecord.NewTicket("TASA", "Ticket", "")
	config, _ := transactionrecord.NewAssetConfig(creator.Account(), m, transactionrecord.Controllers{}, testParams(), 0)

	signed, err := transactionrecord.Sign(config, creator)
	if !assert.Nil(t, err, "sign") {
		return
	}
	packed, _ := config.Pack()
	txId, _ := config.TxId()
	assert.Equal(t, txId, signed.TxId, "txid")
	assert.Equal(t, packed, signed.Packed(), "packed")
	assert.True(t, signed.IsAuthorisedBySender(), "authorised by sender")
	assert.Nil(t, signed.Verify(), "verify")
	assert.NotEmpty(t, signed.Bytes(), "encoded")

	// signing in another account's name
	spoof, err := transactionrecord.Sign(config, other)
	assert.Nil(t, err, "spoof sign")
	assert.False(t, spoof.IsAuthorisedBySender(), "spoof authorised by sender")
	assert.Equal(t, signed.TxId, spoof.TxId, "txid does not depend on signer")
	assert.NotEqual(t, signed.Bytes(), spoof.Bytes(), "encoded carries the signer")

	var stx types.SignedTxn
	if assert.Nil(t, msgpack.Decode(signed.Bytes(), &stx), "decode signed") {
		assert.True(t, stx.AuthAddr.IsZero(), "no auth address for the sender")
		assert.Equal(t, creator.Account().String(), stx.Txn.Sender.String(), "sender")
	}
	if assert.Nil(t, msgpack.Decode(spoof.Bytes(), &stx), "decode spoof") {
		assert.Equal(t, other.Account().String(), stx.AuthAddr.String(), "auth address is the signer")
		assert.Equal(t, creator.Account().String(), stx.Txn.Sender.String(), "spoof sender")
	}

	spoof.Signature = signed.Signature
	assert.Equal(t, fault.ErrBadSignature, spoof.Verify(), "signature of another key")

	_, err = transactionrecord.Sign(nil, creator)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil transaction")
}
