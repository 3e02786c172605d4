// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type assetIdResult struct {
	TxId    string `json:"txId"`
	AssetId uint64 `json:"assetId"`
}

func runAssetId(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkTxId(c.String("txid"))
	if nil != err {
		return err
	}

	workflow, err := m.connect()
	if nil != err {
		return err
	}

	var assetId uint64
	if c.Bool("wait") {
		assetId, err = workflow.AwaitAssetID(m.ctx, txId)
	} else {
		assetId, err = workflow.ResolveAssetID(m.ctx, txId)
	}
	if nil != err {
		return err
	}

	return m.printJson(assetIdResult{
		TxId:    txId,
		AssetId: assetId,
	})
}
