// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/toketmaster/fault"
)

// MnemonicsFileEnv - environment variable naming the mnemonics file
const MnemonicsFileEnv = "MNEMONICS_FILE"

// Role - position of an account in the mnemonics file
type Role int

// roles of the network accounts
const (
	Toketmaster Role = iota
	Issuer
	Fraudster
)

var roleNames = []string{"toketmaster", "issuer", "fraudster"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// RoleFromString - parse a role name
func RoleFromString(s string) (Role, error) {
	for i, name := range roleNames {
		if strings.EqualFold(name, s) {
			return Role(i), nil
		}
	}
	return 0, fault.ErrNotFoundRole
}

// NetworkAccounts - the funded accounts of a network
type NetworkAccounts struct {
	accounts []*KeyPair
}

// ReadMnemonics - one phrase per line, blank lines and # comments ignored
func ReadMnemonics(r io.Reader) (*NetworkAccounts, error) {
	accounts := make([]*KeyPair, 0, len(roleNames))

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		keyPair, err := FromMnemonic(line)
		if nil != err {
			return nil, err
		}
		accounts = append(accounts, keyPair)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	return &NetworkAccounts{
		accounts: accounts,
	}, nil
}

// ReadMnemonicFile - load the network accounts from a file
//
// an empty file name falls back to the MNEMONICS_FILE environment variable
func ReadMnemonicFile(fileName string) (*NetworkAccounts, error) {
	if "" == fileName {
		fileName = os.Getenv(MnemonicsFileEnv)
	}
	if "" == fileName {
		return nil, fault.ErrNotFoundConfigFile
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return ReadMnemonics(f)
}

// Count - number of accounts loaded
func (n *NetworkAccounts) Count() int {
	return len(n.accounts)
}

// Get - key pair for a role
func (n *NetworkAccounts) Get(role Role) (*KeyPair, error) {
	if role < 0 || int(role) >= len(n.accounts) {
		return nil, fault.ErrNotFoundRole
	}
	return n.accounts[role], nil
}

// All - every account in file order
func (n *NetworkAccounts) All() []*KeyPair {
	return append([]*KeyPair{}, n.accounts...)
}
