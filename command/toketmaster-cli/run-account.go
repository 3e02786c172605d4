// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/ledger"
)

// microAlgos per Algo as a power of ten
const algoExponent = -6

type accountResult struct {
	Address       string                `json:"address"`
	Algos         decimal.Decimal       `json:"algos"`
	Round         uint64                `json:"round"`
	Assets        []ledger.AssetHolding `json:"assets"`
	CreatedAssets []ledger.CreatedAsset `json:"createdAssets"`
}

func algos(microAlgos uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(microAlgos), algoExponent)
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acc, err := accountFor(m, c.String("address"))
	if nil != err {
		return err
	}

	if _, err := m.connect(); nil != err {
		return err
	}

	info, err := m.gateway.AccountInfo(m.ctx, acc.String())
	if nil != err {
		return err
	}

	return m.printJson(accountResult{
		Address:       info.Address,
		Algos:         algos(info.Amount),
		Round:         info.Round,
		Assets:        info.Assets,
		CreatedAssets: info.CreatedAssets,
	})
}
