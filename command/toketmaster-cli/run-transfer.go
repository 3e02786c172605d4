// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/fault"
)

type transferResult struct {
	AssetId        uint64 `json:"assetId"`
	Sender         string `json:"sender"`
	Receiver       string `json:"receiver"`
	OptInTxId      string `json:"optInTxId"`
	TxId           string `json:"txId"`
	ConfirmedRound uint64 `json:"confirmedRound,omitempty"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId := c.Uint64("asset")
	if 0 == assetId {
		return fault.ErrRequiredAssetId
	}

	receiverName := c.String("receiver")
	if "" == receiverName {
		return fault.ErrRequiredReceiver
	}

	sender, err := keyPairFor(m, c.GlobalString("identity"), c.GlobalString("password"))
	if nil != err {
		return err
	}

	// the receiver signs its own opt-in
	receiver, err := keyPairFor(m, receiverName, c.String("receiver-password"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "asset: %d\n", assetId)
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	workflow, err := m.connect()
	if nil != err {
		return err
	}

	transferred, err := workflow.Transfer(m.ctx, sender, receiver, assetId, c.Uint64("fee"))
	if nil != err {
		return err
	}

	result := transferResult{
		AssetId:   assetId,
		Sender:    sender.PublicKey,
		Receiver:  receiver.PublicKey,
		OptInTxId: transferred.OptInTxId,
		TxId:      transferred.TxId,
	}

	if c.Bool("wait") {
		status, err := workflow.AwaitConfirmed(m.ctx, transferred.TxId)
		if nil != err {
			return err
		}
		result.ConfirmedRound = status.ConfirmedRound
	}

	return m.printJson(result)
}
