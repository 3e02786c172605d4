// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/toketmaster/command/toketmaster-cli/identities"
	"github.com/bitmark-inc/toketmaster/configuration"
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/tasa"
)

type metadata struct {
	file       string
	config     *configuration.Configuration
	identities *identities.Store
	save       bool
	verbose    bool
	ctx        context.Context
	log        *logger.L
	gateway    ledger.Gateway
	workflow   *tasa.Workflow
	release    func()
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConfigFile = "toketmaster.conf"
	logCategory       = "cli"
)

// commands that run without reading the configuration
var configFree = map[string]bool{
	"":         true,
	"generate": true,
	"help":     true,
	"h":        true,
	"version":  true,
}

func main() {
	defer exitwithstatus.Handler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(ctx, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(ctx context.Context, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "toketmaster-cli"
	app.Usage = "issue and transfer ticket assets"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: defaultConfigFile,
			Usage: " configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity or network role `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in identities file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to the identities file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: " using existing 25 word `PHRASE`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " receive only identity for `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities",
			Action: runList,
		},
		{
			Name:  "accounts",
			Usage: "list the network accounts from the mnemonics file",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "secrets, s",
					Usage: " include secret keys",
				},
			},
			Action: runAccounts,
		},
		{
			Name:      "create",
			Usage:     "issue a new ticket asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "unit, u",
					Value: "",
					Usage: "*unit name `STRING` (max 8 bytes)",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " asset name `STRING` (max 32 bytes)",
				},
				cli.StringFlag{
					Name:  "url",
					Value: "",
					Usage: " asset `URL` (max 96 bytes)",
				},
				cli.Uint64Flag{
					Name:  "total, t",
					Value: 1,
					Usage: " number of base units `COUNT`",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " display decimals `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " transaction fee in microAlgos `FEE` [minimum fee]",
				},
				cli.BoolFlag{
					Name:  "wait, w",
					Usage: " wait for the indexer and show the asset id",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "assetid",
			Usage:     "show the asset id created by a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*asset creation transaction id `TXID`",
				},
				cli.BoolFlag{
					Name:  "wait, w",
					Usage: " retry until indexed",
				},
			},
			Action: runAssetId,
		},
		{
			Name:      "transfer",
			Usage:     "opt the receiver in and transfer a ticket to it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset id to transfer `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity or network role to receive the ticket `NAME`",
				},
				cli.StringFlag{
					Name:  "receiver-password",
					Value: "",
					Usage: " receiver identity `PASSWORD`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " transfer fee in microAlgos `FEE` [minimum fee]",
				},
				cli.BoolFlag{
					Name:  "wait, w",
					Usage: " wait for the transfer to be confirmed",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
				cli.BoolFlag{
					Name:  "wait, w",
					Usage: " wait for confirmation",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "account",
			Usage:     "display balance and assets of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " identity, network role or `ADDRESS` [global identity]",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "sign",
			Usage:     "sign an asset id with the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ID` to endorse",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "verify an asset id signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ID` that was signed",
				},
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*identity, network role or `ADDRESS` of the signer",
				},
				cli.StringFlag{
					Name:  "signature, g",
					Value: "",
					Usage: "*base64 `SIGNATURE`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "spoof",
			Usage:     "try to issue a ticket in the name of another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "victim, V",
					Value: "",
					Usage: "*identity, network role or `ADDRESS` to impersonate",
				},
				cli.StringFlag{
					Name:  "unit, u",
					Value: "FAKE",
					Usage: " unit name `STRING`",
				},
			},
			Action: runSpoof,
		},
		{
			Name:   "password",
			Usage:  "change the current identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display toketmaster-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			verbose: verbose,
			ctx:     ctx,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file for certain commands
		if configFree[c.Args().Get(0)] {
			return nil
		}

		m.file = c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", m.file)
		}

		config, err := configuration.GetConfiguration(m.file)
		if nil != err {
			return err
		}
		m.config = config

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.log = logger.New(logCategory)

		store, err := identities.Load(config.IdentitiesFile)
		if nil != err {
			return err
		}
		m.identities = store

		return nil
	}

	// update the identities if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.config {
			return nil
		}
		defer logger.Finalise()

		if nil != m.release {
			m.release()
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating identities file: %s\n", m.config.IdentitiesFile)
			}
			return identities.Save(m.config.IdentitiesFile, m.identities)
		}
		return nil
	}

	return app
}

// connect to the configured ledger on first use
func (m *metadata) connect() (*tasa.Workflow, error) {
	if nil != m.workflow {
		return m.workflow, nil
	}

	gateway, release, err := m.config.Gateway(m.log)
	if nil != err {
		return nil, err
	}

	p, err := m.config.Poller(m.log)
	if nil != err {
		release()
		return nil, err
	}

	workflow, err := tasa.New(gateway, p, m.log, m.config.ConfirmOptIn)
	if nil != err {
		release()
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "network: %s  poll: %d attempts  budget: %s\n", m.config.Network, p.MaxAttempts(), p.Budget())
	}

	m.gateway = gateway
	m.workflow = workflow
	m.release = release
	return workflow, nil
}
