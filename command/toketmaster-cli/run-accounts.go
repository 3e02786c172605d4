// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/keypair"
)

type accountsEntry struct {
	Role      string `json:"role"`
	Account   string `json:"account"`
	SecretKey string `json:"secretKey,omitempty"`
}

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "mnemonics file: %q\n", m.config.MnemonicsFile)
	}

	accounts, err := m.config.NetworkAccounts()
	if nil != err {
		return err
	}

	secrets := c.Bool("secrets")
	list := make([]accountsEntry, 0, accounts.Count())
	for i, keyPair := range accounts.All() {
		entry := accountsEntry{
			Role:    keypair.Role(i).String(),
			Account: keyPair.PublicKey,
		}
		if secrets {
			entry.SecretKey = keyPair.SecretKey
		}
		list = append(list, entry)
	}

	return m.printJson(list)
}
