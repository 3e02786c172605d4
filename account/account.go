// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/toketmaster/fault"
)

// base32 text of public key plus checksum
const AddressLength = 58

// Account - an ed25519 public key identifying a ledger account
type Account struct {
	PublicKey ed25519.PublicKey
}

// AccountFromString - converts a base32 address and returns an account
//
// the address is the 32 byte public key followed by the last four
// bytes of its SHA-512/256 digest; only the canonical upper case form
// is accepted
func AccountFromString(address string) (*Account, error) {
	if AddressLength != len(address) {
		return nil, fault.ErrInvalidAddress
	}

	a, err := types.DecodeAddress(address)
	if nil != err {
		return nil, fault.ErrInvalidAddress
	}

	return &Account{
		PublicKey: ed25519.PublicKey(a[:]),
	}, nil
}

// AccountFromBytes - create an account from a raw public key
func AccountFromBytes(publicKey []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrKeyLength
	}
	k := make([]byte, ed25519.PublicKeySize)
	copy(k, publicKey)
	return &Account{
		PublicKey: ed25519.PublicKey(k),
	}, nil
}

// Bytes - fetch the public key as byte slice
func (account *Account) Bytes() []byte {
	return account.PublicKey[:]
}

// Address - the ledger form of the account
func (account *Account) Address() types.Address {
	var a types.Address
	copy(a[:], account.PublicKey)
	return a
}

// String - base32 encoding of key and checksum
func (account *Account) String() string {
	return account.Address().String()
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrBadSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrBadSignature
	}
	return nil
}

// IsZero - check for all zero public key
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// Equal - compare two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return bytes.Equal(account.PublicKey, other.PublicKey)
}

// MarshalText - convert an account to its base32 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a base32 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromString(string(s))
	if nil != err {
		return err
	}
	account.PublicKey = a.PublicKey
	return nil
}
