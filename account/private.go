// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/toketmaster/fault"
)

// PrivateKey - an ed25519 private key, the 32 byte seed followed by
// the 32 byte public key
type PrivateKey struct {
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - create a private key from secure random data
func NewPrivateKey() (*PrivateKey, error) {
	seed := make([]byte, ed25519.SeedSize)
	n, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != n {
		panic("too few random bytes")
	}
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed - expand a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrKeyLength
	}
	return &PrivateKey{
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase64 - decode the base64 text of a 64 byte private key
//
// the embedded public key must match the one derived from the seed
func PrivateKeyFromBase64(secretKey string) (*PrivateKey, error) {
	b, err := base64.StdEncoding.DecodeString(secretKey)
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return PrivateKeyFromBytes(b)
}

// PrivateKeyFromBytes - validate a raw 64 byte private key
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(b) {
		return nil, fault.ErrInvalidKey
	}

	expanded := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !bytes.Equal(expanded, b) {
		return nil, fault.ErrInvalidKey
	}
	return &PrivateKey{
		PrivateKey: expanded,
	}, nil
}

// Account - the account belonging to this key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
	}
}

// Seed - the 32 byte seed the key was expanded from
func (privateKey *PrivateKey) Seed() []byte {
	return privateKey.PrivateKey.Seed()
}

// Bytes - the raw 64 byte key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.PrivateKey[:]
}

// String - base64 encoding of the raw key
func (privateKey *PrivateKey) String() string {
	return base64.StdEncoding.EncodeToString(privateKey.PrivateKey)
}

// Sign - deterministic ed25519 signature of a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// MarshalText - convert a private key to its base64 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
