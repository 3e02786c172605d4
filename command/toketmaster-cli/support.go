// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// resolve an identity name, falling back to the default identity
func identityName(m *metadata, name string) (string, error) {
	if "" != name {
		return name, nil
	}
	if "" == m.identities.DefaultIdentity {
		return "", fault.ErrRequiredIdentity
	}
	return m.identities.DefaultIdentity, nil
}

// keyPairFor - a signing key from the identities file or a network role
//
// an identity without a password on the command line is prompted for
func keyPairFor(m *metadata, name string, password string) (*keypair.KeyPair, error) {
	name, err := identityName(m, name)
	if nil != err {
		return nil, err
	}

	if _, err := m.identities.Identity(name); nil == err {
		if "" == password {
			password, err = promptPassword(name)
			if nil != err {
				return nil, err
			}
		}
		return m.identities.KeyPair(name, password)
	}

	role, err := keypair.RoleFromString(name)
	if nil != err {
		return nil, fmt.Errorf("identity: %q: %w", name, fault.ErrNotFoundIdentity)
	}
	accounts, err := m.config.NetworkAccounts()
	if nil != err {
		return nil, err
	}
	return accounts.Get(role)
}

// accountFor - an address given directly or through a name
func accountFor(m *metadata, name string) (*account.Account, error) {
	name, err := identityName(m, name)
	if nil != err {
		return nil, err
	}

	if acc, err := m.identities.Account(name); nil == err {
		return acc, nil
	}

	if role, err := keypair.RoleFromString(name); nil == err {
		accounts, err := m.config.NetworkAccounts()
		if nil != err {
			return nil, err
		}
		keyPair, err := accounts.Get(role)
		if nil != err {
			return nil, err
		}
		return keyPair.Account()
	}

	return account.AccountFromString(name)
}

func checkTxId(txId string) (string, error) {
	if "" == txId {
		return "", fault.ErrRequiredTransactionId
	}
	if !transactionrecord.ValidTxId(txId) {
		return "", fault.ErrInvalidTransactionId
	}
	return txId, nil
}

func checkAssetId(s string) (string, error) {
	if "" == s {
		return "", fault.ErrRequiredAssetId
	}
	if _, err := strconv.ParseUint(s, 10, 64); nil != err {
		return "", fmt.Errorf("asset id: %q: %w", s, err)
	}
	return s, nil
}
