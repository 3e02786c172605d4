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

type generateResult struct {
	*keypair.KeyPair
	Mnemonic string `json:"mnemonic"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := keypair.New()
	if nil != err {
		return err
	}

	mnemonic, err := keyPair.Mnemonic()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", keyPair)
	}

	return m.printJson(generateResult{
		KeyPair:  keyPair,
		Mnemonic: mnemonic,
	})
}
