// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/ledger/algod"
	"github.com/bitmark-inc/toketmaster/ledger/simulator"
	"github.com/bitmark-inc/toketmaster/poller"
)

// networks
const (
	Sandbox   = "sandbox"
	Testnet   = "testnet"
	Simulator = "simulator"
)

// environment overrides
const (
	AlgodAddressEnv   = "ALGOD_ADDR"
	AlgodTokenEnv     = "ALGOD_TOKEN"
	IndexerAddressEnv = "INDEXER_ADDR"
	IndexerTokenEnv   = "INDEXER_TOKEN"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultIdentitiesFile    = "identities.json"
	defaultSimulatorDatabase = "simulator.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "toketmaster.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	sandboxAlgod   = "http://localhost:4001"
	sandboxIndexer = "http://localhost:8980"
	sandboxToken   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	testnetAlgod   = "https://testnet-algorand.api.purestake.io/ps2"
	testnetIndexer = "https://testnet-algorand.api.purestake.io/idx2"
)

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string `gluamapper:"data_directory" json:"data_directory"`
	Network       string `gluamapper:"network" json:"network"`

	Algod     algod.Endpoint   `gluamapper:"algod" json:"algod"`
	Indexer   algod.Endpoint   `gluamapper:"indexer" json:"indexer"`
	RateLimit algod.RateLimit  `gluamapper:"rate_limit" json:"rate_limit"`
	Timeout   string           `gluamapper:"timeout" json:"timeout"`
	Simulator simulator.Config `gluamapper:"simulator" json:"simulator"`
	Poll      poller.Config    `gluamapper:"poll" json:"poll"`

	IdentitiesFile string `gluamapper:"identities_file" json:"identities_file"`
	MnemonicsFile  string `gluamapper:"mnemonics_file" json:"mnemonics_file"`
	ConfirmOptIn   bool   `gluamapper:"confirm_opt_in" json:"confirm_opt_in"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		Network:        Sandbox,
		Poll:           poller.DefaultConfig(),
		IdentitiesFile: defaultIdentitiesFile,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.applyNetwork(); nil != err {
		return nil, err
	}
	options.applyEnvironment()

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrConfigDirPath)
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		makeAbsolute(dataDirectory, false, &options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrConfigDirPath)
	}

	// relative paths are from the data directory
	makeAbsolute(options.DataDirectory, false,
		&options.IdentitiesFile,
		&options.Logging.Directory,
	)
	makeAbsolute(options.DataDirectory, true,
		&options.MnemonicsFile,
		&options.Simulator.Database,
	)

	// the log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name: %w", options.Logging.File, fault.ErrConfigDirPath)
	}

	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// fill endpoints left blank from the network defaults
func (c *Configuration) applyNetwork() error {
	c.Network = strings.ToLower(strings.TrimSpace(c.Network))

	switch c.Network {
	case Sandbox:
		setDefault(&c.Algod.URL, sandboxAlgod)
		setDefault(&c.Algod.Token, sandboxToken)
		setDefault(&c.Indexer.URL, sandboxIndexer)
	case Testnet:
		setDefault(&c.Algod.URL, testnetAlgod)
		setDefault(&c.Algod.TokenHeader, algod.APIKeyHeader)
		setDefault(&c.Indexer.URL, testnetIndexer)
		setDefault(&c.Indexer.TokenHeader, algod.APIKeyHeader)
	case Simulator:
		setDefault(&c.Simulator.Database, defaultSimulatorDatabase)
	default:
		return fmt.Errorf("network: %q: %w", c.Network, fault.ErrInvalidNetwork)
	}
	return nil
}

// environment variables take precedence over the file
func (c *Configuration) applyEnvironment() {
	overrides := []struct {
		name  string
		value *string
	}{
		{AlgodAddressEnv, &c.Algod.URL},
		{AlgodTokenEnv, &c.Algod.Token},
		{IndexerAddressEnv, &c.Indexer.URL},
		{IndexerTokenEnv, &c.Indexer.Token},
		{keypair.MnemonicsFileEnv, &c.MnemonicsFile},
	}
	for _, o := range overrides {
		if value := os.Getenv(o.name); "" != value {
			*o.value = value
		}
	}

	// a testnet key serves both services unless given separately
	if Testnet == c.Network && "" == c.Indexer.Token {
		c.Indexer.Token = c.Algod.Token
	}
}

func setDefault(s *string, value string) {
	if "" == *s {
		*s = value
	}
}

// Poller - the confirmation poller from the poll section
func (c *Configuration) Poller(log *logger.L) (*poller.Poller, error) {
	return poller.NewFromConfig(c.Poll, log)
}

// Gateway - connect to the configured ledger
//
// the returned function releases the gateway
func (c *Configuration) Gateway(log *logger.L) (ledger.Gateway, func(), error) {
	if Simulator == c.Network {
		sim, err := simulator.New(c.Simulator, log)
		if nil != err {
			return nil, nil, err
		}
		return sim, sim.Close, nil
	}

	g, err := algod.New(algod.Config{
		Algod:     c.Algod,
		Indexer:   c.Indexer,
		RateLimit: c.RateLimit,
		Timeout:   c.Timeout,
	}, log)
	if nil != err {
		return nil, nil, err
	}
	return g, func() {}, nil
}

// NetworkAccounts - the role accounts from the mnemonics file
func (c *Configuration) NetworkAccounts() (*keypair.NetworkAccounts, error) {
	return keypair.ReadMnemonicFile(c.MnemonicsFile)
}
