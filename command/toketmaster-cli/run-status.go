// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/ledger"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkTxId(c.String("txid"))
	if nil != err {
		return err
	}

	workflow, err := m.connect()
	if nil != err {
		return err
	}

	var status *ledger.PendingStatus
	if c.Bool("wait") {
		status, err = workflow.AwaitConfirmed(m.ctx, txId)
	} else {
		status, err = m.gateway.PendingStatus(m.ctx, txId)
	}
	if nil != err {
		return err
	}

	return m.printJson(status)
}
