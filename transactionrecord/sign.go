// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
)

// Signed - a record with its signature, ready for submission
type Signed struct {
	Transaction Transaction       `json:"transaction"`
	Signature   account.Signature `json:"signature"`
	Signer      *account.Account  `json:"signer"`
	TxId        string            `json:"txId"`

	packed  Packed
	encoded []byte
}

// Sign - sign a record
//
// the signer need not be the sender; the network only accepts the
// record if the sender's account is authorised by the signer
func Sign(tx Transaction, privateKey *account.PrivateKey) (*Signed, error) {
	if nil == tx || nil == privateKey {
		return nil, fault.ErrMissingParameters
	}

	wire, err := tx.wire()
	if nil != err {
		return nil, err
	}

	// an AuthAddr is recorded when the signer is not the sender
	txId, encoded, err := crypto.SignTransaction(privateKey.PrivateKey, wire)
	if nil != err {
		return nil, err
	}

	var stx types.SignedTxn
	if err := msgpack.Decode(encoded, &stx); nil != err {
		return nil, err
	}

	// re-check the signature before it leaves the process
	packed := pack(wire)
	signer := privateKey.Account()
	signature := account.Signature(stx.Sig[:])
	if err := signer.CheckSignature(packed, signature); nil != err {
		return nil, fault.ErrSignatureMismatch
	}

	return &Signed{
		Transaction: tx,
		Signature:   signature,
		Signer:      signer,
		TxId:        txId,
		packed:      packed,
		encoded:     encoded,
	}, nil
}

// Bytes - the encoded signed transaction for submission
func (s *Signed) Bytes() []byte {
	return s.encoded
}

// Packed - the bytes covered by the signature
func (s *Signed) Packed() Packed {
	return s.packed
}

// IsAuthorisedBySender - the signer is the sender
func (s *Signed) IsAuthorisedBySender() bool {
	return s.Signer.Equal(s.Transaction.GetSender())
}

// Verify - check the signature over the packed record
func (s *Signed) Verify() error {
	if nil == s.Signer {
		return fault.ErrBadSignature
	}
	return s.Signer.CheckSignature(s.packed, s.Signature)
}
