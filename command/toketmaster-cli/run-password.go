// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := identityName(m, c.GlobalString("identity"))
	if nil != err {
		return err
	}

	oldPassword := c.GlobalString("password")
	if "" == oldPassword {
		oldPassword, err = promptPassword(name)
		if nil != err {
			return err
		}
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	if err := m.identities.ChangePassword(name, oldPassword, newPassword); nil != err {
		return err
	}
	m.save = true

	if m.verbose {
		fmt.Fprintf(m.e, "password changed for: %s\n", name)
	}
	return nil
}
