// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
)

// KeyPair - public address and base64 secret key of a ledger identity
type KeyPair struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`

	privateKey *account.PrivateKey
}

// New - create a key pair from secure random data
func New() (*KeyPair, error) {
	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return nil, err
	}
	return FromPrivateKey(privateKey), nil
}

// FromMnemonic - recover a key pair from its 25 word phrase
func FromMnemonic(phrase string) (*KeyPair, error) {
	privateKey, err := account.PrivateKeyFromPhrase(phrase)
	if nil != err {
		return nil, err
	}
	return FromPrivateKey(privateKey), nil
}

// FromSecretKey - recover a key pair from the base64 secret key
func FromSecretKey(secretKey string) (*KeyPair, error) {
	privateKey, err := account.PrivateKeyFromBase64(secretKey)
	if nil != err {
		return nil, err
	}
	return FromPrivateKey(privateKey), nil
}

// FromPrivateKey - wrap an existing private key
func FromPrivateKey(privateKey *account.PrivateKey) *KeyPair {
	return &KeyPair{
		PublicKey:  privateKey.Account().String(),
		SecretKey:  privateKey.String(),
		privateKey: privateKey,
	}
}

// PrivateKey - the decoded private key
//
// a key pair built as a literal is validated on first use
func (keyPair *KeyPair) PrivateKey() (*account.PrivateKey, error) {
	if nil != keyPair.privateKey {
		return keyPair.privateKey, nil
	}
	privateKey, err := account.PrivateKeyFromBase64(keyPair.SecretKey)
	if nil != err {
		return nil, err
	}
	if privateKey.Account().String() != keyPair.PublicKey {
		return nil, fault.ErrInvalidKey
	}
	return privateKey, nil
}

// Account - the public account of the key pair
func (keyPair *KeyPair) Account() (*account.Account, error) {
	return account.AccountFromString(keyPair.PublicKey)
}

// Mnemonic - the 25 word recovery phrase
func (keyPair *KeyPair) Mnemonic() (string, error) {
	privateKey, err := keyPair.PrivateKey()
	if nil != err {
		return "", err
	}
	return privateKey.Phrase(), nil
}

// String - only the public part is ever printed
func (keyPair *KeyPair) String() string {
	return keyPair.PublicKey
}
