// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

type createResult struct {
	Creator string `json:"creator"`
	TxId    string `json:"txId"`
	AssetId uint64 `json:"assetId,omitempty"`
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	metadata, err := transactionrecord.NewAssetMetadata(transactionrecord.AssetMetadata{
		UnitName:  c.String("unit"),
		AssetName: c.String("name"),
		URL:       c.String("url"),
		Decimals:  uint32(c.Uint("decimals")),
		Total:     c.Uint64("total"),
	})
	if nil != err {
		return err
	}

	creator, err := keyPairFor(m, c.GlobalString("identity"), c.GlobalString("password"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "creator: %s\n", creator)
		fmt.Fprintf(m.e, "unit: %q  name: %q  url: %q\n", metadata.UnitName, metadata.AssetName, metadata.URL)
		fmt.Fprintf(m.e, "total: %d  decimals: %d\n", metadata.Total, metadata.Decimals)
	}

	workflow, err := m.connect()
	if nil != err {
		return err
	}

	txId, err := workflow.Issue(m.ctx, creator, metadata, c.Uint64("fee"), transactionrecord.Controllers{})
	if nil != err {
		return err
	}

	result := createResult{
		Creator: creator.PublicKey,
		TxId:    txId,
	}

	if c.Bool("wait") {
		if m.verbose {
			fmt.Fprintf(m.e, "waiting for asset id of: %s\n", txId)
		}
		result.AssetId, err = workflow.AwaitAssetID(m.ctx, txId)
		if nil != err {
			return err
		}
	}

	return m.printJson(result)
}
