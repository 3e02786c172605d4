// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
)

type accountTest struct {
	seed      []byte
	publicKey []byte
	address   string
	secretKey string
}

// valid accounts
var testAccount = []accountTest{
	{
		seed:      decodeHex("674be7e84ebf8ffbd6aa91bcfb432a5575ad0cb76d075b482c5e3a4a9712af5a"),
		publicKey: decodeHex("154a7757048890b65ed40a72a621a6297ae4f41d80d95bc8795e97d19115c894"),
		address:   "CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIBI",
		secretKey: "Z0vn6E6/j/vWqpG8+0MqVXWtDLdtB1tILF46SpcSr1oVSndXBIiQtl7UCnKmIaYpeuT0HYDZW8h5XpfRkRXIlA==",
	},
	{
		seed:      decodeHex("28e35dec4ddfcf8a7a6abd85cd80e2be470184378440aabfaad088b72f7eb6b4"),
		publicKey: decodeHex("798b289d83ce8acf98d3402f4f84cf491a4044a2a6a582686b1f38445359f55e"),
		address:   "PGFSRHMDZ2FM7GGTIAXU7BGPJENEARFCU2SYE2DLD44EIU2Z6VPF7AQEPQ",
		secretKey: "KONd7E3fz4p6ar2FzYDivkcBhDeEQKq/qtCIty9+trR5iyidg86Kz5jTQC9PhM9JGkBEoqalgmhrHzhEU1n1Xg==",
	},
}

type invalid struct {
	str string
	err error
}

// invalid addresses
var testInvalidAddress = []invalid{
	{"", fault.ErrInvalidAddress},
	{"CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIB", fault.ErrInvalidAddress},   // truncated
	{"CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIBA", fault.ErrInvalidAddress},  // checksum mismatch
	{"cvfhovyercilmxwubjzkmingff5oj5a5qdmvxsdzl2l5deivzcklp2xibi", fault.ErrInvalidAddress},  // lower case
	{"CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIB1", fault.ErrInvalidAddress},  // not base32
	{"CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIBIA", fault.ErrInvalidAddress}, // too long
}

func TestValidAddress(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromString(test.address)
		if !assert.Nil(t, err, "%d: decode error", index) {
			continue
		}
		assert.Equal(t, test.publicKey, acc.Bytes(), "%d: public key", index)
		assert.Equal(t, test.address, acc.String(), "%d: round trip", index)
		assert.False(t, acc.IsZero(), "%d: zero", index)
	}
}

func TestAccountFromBytes(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBytes(test.publicKey)
		assert.Nil(t, err, "%d: error", index)
		assert.Equal(t, test.address, acc.String(), "%d: address", index)
	}

	_, err := account.AccountFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrKeyLength, err, "short key")
}

func TestInvalidAddress(t *testing.T) {
	for index, test := range testInvalidAddress {
		acc, err := account.AccountFromString(test.str)
		assert.Nil(t, acc, "%d: account", index)
		assert.Equal(t, test.err, err, "%d: error", index)
	}
}

func TestZeroAccount(t *testing.T) {
	acc, err := account.AccountFromBytes(make([]byte, 32))
	assert.Nil(t, err, "error")
	assert.True(t, acc.IsZero(), "zero")
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAY5HFKQ", acc.String(), "zero address")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner *account.Account `json:"owner"`
	}
	for index, test := range testAccount {
		acc, _ := account.AccountFromString(test.address)

		buffer, err := json.Marshal(holder{Owner: acc})
		assert.Nil(t, err, "%d: marshal", index)
		assert.Equal(t, `{"owner":"`+test.address+`"}`, string(buffer), "%d: json", index)

		var h holder
		err = json.Unmarshal(buffer, &h)
		assert.Nil(t, err, "%d: unmarshal", index)
		assert.True(t, acc.Equal(h.Owner), "%d: equal", index)
	}

	var h holder
	err := json.Unmarshal([]byte(`{"owner":"NOT-AN-ADDRESS"}`), &h)
	assert.Equal(t, fault.ErrInvalidAddress, err, "bad address")
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestLedgerEncoding(t *testing.T) {
	for index, test := range testAccount {
		address, err := types.EncodeAddress(test.publicKey)
		assert.Nil(t, err, "%d: encode error", index)
		assert.Equal(t, address, test.address, "%d: ledger address", index)

		privateKey, err := account.PrivateKeyFromSeed(test.seed)
		if !assert.Nil(t, err, "%d: seed error", index) {
			continue
		}
		assert.Equal(t, test.secretKey, privateKey.String(), "%d: secret key", index)
		assert.Equal(t, address, privateKey.Account().Address().String(), "%d: account address", index)

		sk, err := mnemonic.ToPrivateKey(privateKey.Phrase())
		assert.Nil(t, err, "%d: ledger phrase error", index)
		assert.Equal(t, privateKey.Bytes(), []byte(sk), "%d: ledger phrase key", index)
	}
}
