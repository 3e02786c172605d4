// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/toketmaster/keypair"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known identities for tests
const (
	IssuerAddress = "CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIBI"
	IssuerSecret  = "Z0vn6E6/j/vWqpG8+0MqVXWtDLdtB1tILF46SpcSr1oVSndXBIiQtl7UCnKmIaYpeuT0HYDZW8h5XpfRkRXIlA=="

	HolderAddress = "PGFSRHMDZ2FM7GGTIAXU7BGPJENEARFCU2SYE2DLD44EIU2Z6VPF7AQEPQ"
	HolderSecret  = "KONd7E3fz4p6ar2FzYDivkcBhDeEQKq/qtCIty9+trR5iyidg86Kz5jTQC9PhM9JGkBEoqalgmhrHzhEU1n1Xg=="
)

// sandbox network phrases in role order
var Mnemonics = []string{
	"kingdom social feel raw primary lab shallow winner remind empty sing believe beef chunk lizard mesh town female web awesome vacant pond giggle absent prefer",
	"okay today prevent few hill step climb jazz combine soul staff butter boil else key file fade come friend abandon river basket nest about kit",
	"orient destroy edge grit climb scan super always capable visa orange web car reduce fee aspect mosquito enroll crane impulse crawl warrior remove abstract kite",
}

// Issuer - the asset creating identity
func Issuer() *keypair.KeyPair {
	return mustSecret(IssuerSecret)
}

// Holder - the receiving identity
func Holder() *keypair.KeyPair {
	return mustSecret(HolderSecret)
}

// Fraudster - an identity that tries to act for others
func Fraudster() *keypair.KeyPair {
	keyPair, err := keypair.FromMnemonic(Mnemonics[keypair.Fraudster])
	if nil != err {
		panic(err)
	}
	return keyPair
}

func mustSecret(secret string) *keypair.KeyPair {
	keyPair, err := keypair.FromSecretKey(secret)
	if nil != err {
		panic(err)
	}
	return keyPair
}

// SetupTestLogger - log to a temporary directory at critical level only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
