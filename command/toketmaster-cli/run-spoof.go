// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

type spoofResult struct {
	Victim   string `json:"victim"`
	Signer   string `json:"signer"`
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason,omitempty"`
	TxId     string `json:"txId,omitempty"`
}

// the ledger is expected to refuse; a refusal is the successful outcome
func runSpoof(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	victimName := c.String("victim")
	if "" == victimName {
		return fault.ErrRequiredIdentity
	}
	victim, err := accountFor(m, victimName)
	if nil != err {
		return err
	}

	signer, err := keyPairFor(m, c.GlobalString("identity"), c.GlobalString("password"))
	if nil != err {
		return err
	}

	metadata, err := transactionrecord.NewTicket(c.String("unit"), "spoofed ticket", "")
	if nil != err {
		return err
	}

	workflow, err := m.connect()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "issuing as: %s  signed by: %s\n", victim, signer)
	}

	result := spoofResult{
		Victim: victim.String(),
		Signer: signer.PublicKey,
	}

	txId, err := workflow.IssueAs(m.ctx, victim, signer, metadata, 0, transactionrecord.Controllers{})
	var rejected *fault.RejectedError
	switch {
	case errors.As(err, &rejected):
		result.Rejected = true
		result.Reason = rejected.Reason
	case nil != err:
		return err
	default:
		m.log.Criticalf("spoofed issue accepted: %s", txId)
		result.TxId = txId
	}

	return m.printJson(result)
}
