// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/toketmaster/configuration"
	"github.com/bitmark-inc/toketmaster/keypair"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type entry struct {
	Role    string           `json:"role"`
	Account string           `json:"account"`
	Algos   *decimal.Decimal `json:"algos,omitempty"`
}

func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "mnemonics", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "balances", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--config-file=FILE] [--mnemonics=FILE] [--balances]", program)
	}

	balances := len(options["balances"]) > 0
	mnemonicsFile := ""
	if len(options["mnemonics"]) > 0 {
		mnemonicsFile = options["mnemonics"][0]
	}

	var config *configuration.Configuration
	if len(options["config-file"]) > 0 {
		config, err = configuration.GetConfiguration(options["config-file"][0])
		if nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
		if "" == mnemonicsFile {
			mnemonicsFile = config.MnemonicsFile
		}
	} else if balances {
		exitwithstatus.Message("%s: balances need a configuration file", program)
	}

	accounts, err := keypair.ReadMnemonicFile(mnemonicsFile)
	if nil != err {
		exitwithstatus.Message("%s: mnemonics error: %s", program, err)
	}

	list := make([]entry, 0, accounts.Count())
	for i, keyPair := range accounts.All() {
		list = append(list, entry{
			Role:    keypair.Role(i).String(),
			Account: keyPair.PublicKey,
		})
	}

	if balances {
		if err := fetchBalances(config, list); nil != err {
			exitwithstatus.Message("%s: balance error: %s", program, err)
		}
	}

	b, err := json.MarshalIndent(list, "", "  ")
	if nil != err {
		exitwithstatus.Message("%s: json error: %s", program, err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", b)
}

func fetchBalances(config *configuration.Configuration, list []entry) error {

	if err := logger.Initialise(config.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	log := logger.New("accounts")

	gateway, release, err := config.Gateway(log)
	if nil != err {
		return err
	}
	defer release()

	ctx := context.Background()
	for i := range list {
		info, err := gateway.AccountInfo(ctx, list[i].Account)
		if nil != err {
			return fmt.Errorf("%s: %w", list[i].Role, err)
		}
		algos := decimal.NewFromBigInt(new(big.Int).SetUint64(info.Amount), -6)
		list[i].Algos = &algos
	}
	return nil
}
