// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/message"
)

type signResult struct {
	AssetId   string            `json:"assetId"`
	Signer    string            `json:"signer"`
	Payload   string            `json:"payload"`
	Signature account.Signature `json:"signature"`
}

type verifyResult struct {
	AssetId string `json:"assetId"`
	Signer  string `json:"signer"`
	Valid   bool   `json:"valid"`
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.String("asset"))
	if nil != err {
		return err
	}

	signer, err := keyPairFor(m, c.GlobalString("identity"), c.GlobalString("password"))
	if nil != err {
		return err
	}

	payload := message.Create(assetId)
	signed, err := message.New(payload, signer.SecretKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s\n", signer)
		fmt.Fprintf(m.e, "payload: %s\n", payload)
	}

	return m.printJson(signResult{
		AssetId:   assetId,
		Signer:    signer.PublicKey,
		Payload:   string(payload),
		Signature: signed.Signature,
	})
}

// a bad signature is reported, not returned as an error
func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.String("asset"))
	if nil != err {
		return err
	}

	signerName := c.String("signer")
	if "" == signerName {
		return fault.ErrRequiredIdentity
	}
	signer, err := accountFor(m, signerName)
	if nil != err {
		return err
	}

	var signature account.Signature
	if err := signature.UnmarshalText([]byte(c.String("signature"))); nil != err {
		return err
	}

	err = message.Verify(message.Create(assetId), signer.String(), signature)
	if nil != err && !fault.IsErrInvalid(err) {
		return err
	}
	if m.verbose && nil != err {
		fmt.Fprintf(m.e, "verify: %s\n", err)
	}

	return m.printJson(verifyResult{
		AssetId: assetId,
		Signer:  signer.String(),
		Valid:   nil == err,
	})
}
