// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type listEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	CanSign     bool   `json:"canSign"`
	Default     bool   `json:"default"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list := make([]listEntry, 0, len(m.identities.Identities))
	for _, name := range m.identities.Names() {
		id := m.identities.Identities[name]
		list = append(list, listEntry{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			CanSign:     id.HasPrivateKey(),
			Default:     name == m.identities.DefaultIdentity,
		})
	}

	return m.printJson(list)
}
