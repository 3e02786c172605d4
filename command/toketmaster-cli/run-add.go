// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
)

type addResult struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	Default bool   `json:"default"`
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fault.ErrRequiredIdentity
	}
	description := c.String("description")
	mnemonic := c.String("mnemonic")
	address := c.String("address")

	if "" != mnemonic && "" != address {
		return fmt.Errorf("mnemonic and address: %w", fault.ErrIncompatibleOptions)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	if "" != address {
		if err := m.identities.AddReceiveOnly(name, description, address); nil != err {
			return err
		}
	} else {
		var keyPair *keypair.KeyPair
		var err error
		if "" == mnemonic {
			keyPair, err = keypair.New()
		} else {
			keyPair, err = keypair.FromMnemonic(mnemonic)
		}
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		if err := m.identities.Add(name, description, keyPair, password); nil != err {
			return err
		}
	}

	if c.Bool("default") {
		m.identities.DefaultIdentity = name
	}
	m.save = true

	id, err := m.identities.Identity(name)
	if nil != err {
		return err
	}
	return m.printJson(addResult{
		Name:    name,
		Account: id.Account,
		Default: name == m.identities.DefaultIdentity,
	})
}
