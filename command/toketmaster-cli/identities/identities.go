// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identities - named key pairs kept in a JSON file
//
// The account address is stored in clear so receive only identities
// need no password.  Secret keys are encrypted with a key derived from
// the password by argon2i and sealed with nacl/secretbox.
package identities

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
)

// MinPasswordLength - shortest acceptable password
const MinPasswordLength = 8

// Store - identities file data format
type Store struct {
	DefaultIdentity string              `json:"default_identity"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// HasPrivateKey - whether the identity can sign
func (id *Identity) HasPrivateKey() bool {
	return "" != id.Data
}

// Load - read the identities file
//
// a missing file is an empty store
func Load(fileName string) (*Store, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	store := &Store{
		Identities: make(map[string]Identity),
	}

	f, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return store, nil
	}
	if nil != err {
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(store); nil != err {
		return nil, err
	}
	if nil == store.Identities {
		store.Identities = make(map[string]Identity)
	}
	return store, nil
}

// Names - sorted identity names
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Identities))
	for name := range s.Identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identity - find identity for a given name
func (s *Store) Identity(name string) (*Identity, error) {
	id, ok := s.Identities[name]
	if !ok {
		return nil, fault.ErrNotFoundIdentity
	}
	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (s *Store) Account(name string) (*account.Account, error) {
	id, err := s.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.AccountFromString(id.Account)
}

// KeyPair - decrypt the key pair of a named identity
func (s *Store) KeyPair(name string, password string) (*keypair.KeyPair, error) {
	id, err := s.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// Add - store an encrypted identity
//
// the first identity added becomes the default
func (s *Store) Add(name string, description string, keyPair *keypair.KeyPair, password string) error {

	if _, ok := s.Identities[name]; ok {
		return fault.ErrIdentityExists
	}
	if len(password) < MinPasswordLength {
		return fault.ErrPasswordLength
	}

	id, err := encryptIdentity(description, keyPair, password)
	if nil != err {
		return err
	}

	s.Identities[name] = *id
	if "" == s.DefaultIdentity {
		s.DefaultIdentity = name
	}
	return nil
}

// AddReceiveOnly - store a public only identity
func (s *Store) AddReceiveOnly(name string, description string, address string) error {

	if _, ok := s.Identities[name]; ok {
		return fault.ErrIdentityExists
	}

	acc, err := account.AccountFromString(address)
	if nil != err {
		return err
	}

	s.Identities[name] = Identity{
		Description: description,
		Account:     acc.String(),
	}
	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (s *Store) ChangePassword(name string, oldPassword string, newPassword string) error {
	id, err := s.Identity(name)
	if nil != err {
		return err
	}
	if len(newPassword) < MinPasswordLength {
		return fault.ErrPasswordLength
	}

	keyPair, err := decryptIdentity(oldPassword, id)
	if nil != err {
		return err
	}

	updated, err := encryptIdentity(id.Description, keyPair, newPassword)
	if nil != err {
		return err
	}
	s.Identities[name] = *updated
	return nil
}

func encryptIdentity(description string, keyPair *keypair.KeyPair, password string) (*Identity, error) {
	privateKey, err := keyPair.PrivateKey()
	if nil != err {
		return nil, err
	}

	salt, key, err := hashPassword(password)
	if nil != err {
		return nil, err
	}

	encrypted, err := encryptData(privateKey.String(), key)
	if nil != err {
		return nil, err
	}

	return &Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}, nil
}

// check if password unlocks data in the identities file
func decryptIdentity(password string, id *Identity) (*keypair.KeyPair, error) {

	if !id.HasPrivateKey() {
		return nil, fault.ErrNotPrivateKey
	}

	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(id.Salt)); nil != err {
		return nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	secretKey, err := decryptData(id.Data, key)
	if nil != err {
		return nil, fault.ErrWrongPassword
	}

	keyPair, err := keypair.FromSecretKey(secretKey)
	if nil != err {
		return nil, err
	}
	if keyPair.PublicKey != id.Account {
		return nil, fault.ErrInvalidKey
	}
	return keyPair, nil
}
