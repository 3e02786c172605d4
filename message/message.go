// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - off ledger endorsement of asset ids
//
// A payload is signed with the raw ed25519 private key of an identity,
// without any domain prefix, so any ed25519 implementation can check it.
package message

import (
	"encoding/base64"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
)

// SignedMessage - a payload and the signature over it
type SignedMessage struct {
	Payload   []byte            `json:"payload"`
	Signature account.Signature `json:"signature"`
}

// Create - the payload endorsing an asset id
func Create(assetId string) []byte {
	return []byte(base64.StdEncoding.EncodeToString([]byte(assetId)))
}

// Sign - sign a payload with a base64 secret key
func Sign(payload []byte, secretKey string) ([]byte, error) {
	privateKey, err := account.PrivateKeyFromBase64(secretKey)
	if nil != err {
		return nil, err
	}
	return SignWithKey(payload, privateKey), nil
}

// SignWithKey - sign a payload with a decoded private key
func SignWithKey(payload []byte, privateKey *account.PrivateKey) []byte {
	return privateKey.Sign(payload)
}

// Verify - check a signature against a base32 address
//
// returns nil only if the signature was made by the key behind the
// address over exactly this payload
func Verify(payload []byte, publicKey string, signature []byte) error {
	acc, err := account.AccountFromString(publicKey)
	if nil != err {
		return fault.ErrInvalidKey
	}
	return acc.CheckSignature(payload, signature)
}

// New - sign a payload into a message
func New(payload []byte, secretKey string) (*SignedMessage, error) {
	signature, err := Sign(payload, secretKey)
	if nil != err {
		return nil, err
	}
	return &SignedMessage{
		Payload:   payload,
		Signature: signature,
	}, nil
}

// Verify - check the message was signed by the given address
func (m *SignedMessage) Verify(publicKey string) error {
	return Verify(m.Payload, publicKey, m.Signature)
}
