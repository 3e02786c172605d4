// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/toketmaster/configuration"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/fixtures"
	"github.com/bitmark-inc/toketmaster/ledger/algod"
	"github.com/bitmark-inc/toketmaster/ledger/simulator"
	"github.com/bitmark-inc/toketmaster/poller"
)

func writeConfig(t *testing.T, content string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "toketmaster.conf")
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return fileName
}

func clearEnvironment(t *testing.T) {
	for _, name := range []string{
		configuration.AlgodAddressEnv,
		configuration.AlgodTokenEnv,
		configuration.IndexerAddressEnv,
		configuration.IndexerTokenEnv,
		"MNEMONICS_FILE",
	} {
		t.Setenv(name, "")
	}
}

func TestSandboxDefaults(t *testing.T) {
	clearEnvironment(t)
	fileName := writeConfig(t, `return { network = "sandbox" }`)

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration") {
		return
	}

	dir := filepath.Dir(fileName)
	assert.Equal(t, "http://localhost:4001", options.Algod.URL, "algod")
	assert.Equal(t, 64, len(options.Algod.Token), "sandbox token")
	assert.Equal(t, "http://localhost:8980", options.Indexer.URL, "indexer")
	assert.Equal(t, filepath.Join(dir, "identities.json"), options.IdentitiesFile, "identities")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "", options.MnemonicsFile, "no mnemonics")
	assert.False(t, options.ConfirmOptIn, "confirm opt-in")

	p, err := options.Poller(nil)
	if assert.Nil(t, err, "poller") {
		assert.Equal(t, poller.DefaultMaxAttempts, p.MaxAttempts(), "attempts")
		assert.Equal(t, 29*time.Second, p.Budget(), "budget")
	}
}

func TestTestnetWithEnvironment(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(configuration.AlgodTokenEnv, "purestake-key")
	t.Setenv("MNEMONICS_FILE", "accounts.txt")

	fileName := writeConfig(t, `
local M = {}
M.network = "TestNet"
M.confirm_opt_in = true
M.poll = {
  policy = "exponential",
  attempts = 6,
  interval = "200ms",
  maximum = "2s",
}
M.rate_limit = { requests_per_second = 5, burst = 2 }
return M
`)

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration") {
		return
	}

	assert.Equal(t, configuration.Testnet, options.Network, "network")
	assert.Equal(t, "https://testnet-algorand.api.purestake.io/ps2", options.Algod.URL, "algod")
	assert.Equal(t, algod.APIKeyHeader, options.Algod.TokenHeader, "algod header")
	assert.Equal(t, "purestake-key", options.Algod.Token, "algod token")
	assert.Equal(t, "purestake-key", options.Indexer.Token, "shared indexer token")
	assert.Equal(t, algod.APIKeyHeader, options.Indexer.TokenHeader, "indexer header")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "accounts.txt"), options.MnemonicsFile, "mnemonics")
	assert.True(t, options.ConfirmOptIn, "confirm opt-in")
	assert.Equal(t, float64(5), options.RateLimit.RequestsPerSecond, "rate")

	p, err := options.Poller(nil)
	if assert.Nil(t, err, "poller") {
		assert.Equal(t, 6, p.MaxAttempts(), "attempts")
		assert.Equal(t, (200+400+800+1600+2000)*time.Millisecond, p.Budget(), "bounded budget")
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnvironment(t)
	t.Setenv(configuration.AlgodAddressEnv, "http://algod.server:4001")
	t.Setenv(configuration.IndexerAddressEnv, "http://indexer.server:8980")

	fileName := writeConfig(t, `
return {
  network = "sandbox",
  algod = { url = "http://127.0.0.1:4001", token = "file-token" },
}
`)

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration") {
		return
	}
	assert.Equal(t, "http://algod.server:4001", options.Algod.URL, "algod from environment")
	assert.Equal(t, "file-token", options.Algod.Token, "token from file")
	assert.Equal(t, "http://indexer.server:8980", options.Indexer.URL, "indexer from environment")
}

func TestSimulatorGateway(t *testing.T) {
	clearEnvironment(t)
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	fileName := writeConfig(t, `
return {
  network = "simulator",
  simulator = { genesis_id = "unit-test-v1", index_lag = 1 },
}
`)

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration") {
		return
	}
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "simulator.leveldb"), options.Simulator.Database, "database")
	assert.Equal(t, 1, options.Simulator.IndexLag, "index lag")

	gateway, done, err := options.Gateway(logger.New(fixtures.LogCategory))
	if !assert.Nil(t, err, "gateway") {
		return
	}
	defer done()

	_, ok := gateway.(*simulator.Simulator)
	assert.True(t, ok, "simulator gateway")
}

func TestInvalidConfiguration(t *testing.T) {
	clearEnvironment(t)

	_, err := configuration.GetConfiguration(writeConfig(t, `return { network = "mainnet" }`))
	assert.True(t, fault.IsErrInvalid(err), "unknown network")

	_, err = configuration.GetConfiguration(writeConfig(t, `return 42`))
	assert.Equal(t, fault.ErrConfigNotTable, err, "not a table")

	_, err = configuration.GetConfiguration(writeConfig(t, `return { data_directory = "~" }`))
	assert.True(t, fault.IsErrInvalid(err), "bad data directory")

	_, err = configuration.GetConfiguration(writeConfig(t, `return { logging = { file = "sub/x.log" } }`))
	assert.True(t, fault.IsErrInvalid(err), "log file path")

	_, err = configuration.GetConfiguration(writeConfig(t, `this is not lua`))
	assert.NotNil(t, err, "syntax error")

	_, err = configuration.GetConfiguration(filepath.Join(t.TempDir(), "missing.conf"))
	assert.NotNil(t, err, "missing file")
}
