// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/keypair"
)

const (
	address   = "CVFHOVYERCILMXWUBJZKMINGFF5OJ5A5QDMVXSDZL2L5DEIVZCKLP2XIBI"
	secretKey = "Z0vn6E6/j/vWqpG8+0MqVXWtDLdtB1tILF46SpcSr1oVSndXBIiQtl7UCnKmIaYpeuT0HYDZW8h5XpfRkRXIlA=="

	phrase1 = "kingdom social feel raw primary lab shallow winner remind empty sing believe beef chunk lizard mesh town female web awesome vacant pond giggle absent prefer"
	phrase2 = "okay today prevent few hill step climb jazz combine soul staff butter boil else key file fade come friend abandon river basket nest about kit"
	phrase3 = "orient destroy edge grit climb scan super always capable visa orange web car reduce fee aspect mosquito enroll crane impulse crawl warrior remove abstract kite"
)

func TestFromSecretKey(t *testing.T) {
	keyPair, err := keypair.FromSecretKey(secretKey)
	assert.Nil(t, err, "error")
	assert.Equal(t, address, keyPair.PublicKey, "public key")
	assert.Equal(t, secretKey, keyPair.SecretKey, "secret key")
	assert.Equal(t, address, keyPair.String(), "string")

	acc, err := keyPair.Account()
	assert.Nil(t, err, "account")
	assert.Equal(t, address, acc.String(), "account address")

	_, err = keypair.FromSecretKey("AAAA")
	assert.Equal(t, fault.ErrInvalidKey, err, "bad secret")
}

func TestMnemonicRoundTrip(t *testing.T) {
	keyPair, err := keypair.New()
	assert.Nil(t, err, "new")

	m, err := keyPair.Mnemonic()
	assert.Nil(t, err, "mnemonic")
	assert.Equal(t, 25, len(strings.Fields(m)), "mnemonic words")

	recovered, err := keypair.FromMnemonic(m)
	assert.Nil(t, err, "recover")
	assert.Equal(t, keyPair.PublicKey, recovered.PublicKey, "public key")
	assert.Equal(t, keyPair.SecretKey, recovered.SecretKey, "secret key")
}

func TestLiteralKeyPair(t *testing.T) {
	keyPair := &keypair.KeyPair{
		PublicKey: address,
		SecretKey: secretKey,
	}
	privateKey, err := keyPair.PrivateKey()
	assert.Nil(t, err, "literal key pair")
	assert.Equal(t, address, privateKey.Account().String(), "address")

	mismatched := &keypair.KeyPair{
		PublicKey: "PGFSRHMDZ2FM7GGTIAXU7BGPJENEARFCU2SYE2DLD44EIU2Z6VPF7AQEPQ",
		SecretKey: secretKey,
	}
	_, err = mismatched.PrivateKey()
	assert.Equal(t, fault.ErrInvalidKey, err, "mismatched pair")
}

func TestReadMnemonics(t *testing.T) {
	text := "# sandbox accounts\n" + phrase1 + "\n\n" + phrase2 + "\n" + phrase3 + "\n"

	accounts, err := keypair.ReadMnemonics(strings.NewReader(text))
	if !assert.Nil(t, err, "read") {
		return
	}
	assert.Equal(t, 3, accounts.Count(), "count")

	issuer, err := accounts.Get(keypair.Issuer)
	assert.Nil(t, err, "issuer")
	m, _ := issuer.Mnemonic()
	assert.Equal(t, phrase2, m, "issuer phrase")

	_, err = accounts.Get(keypair.Role(5))
	assert.Equal(t, fault.ErrNotFoundRole, err, "missing role")

	assert.Equal(t, 3, len(accounts.All()), "all")
}

func TestReadMnemonicFileFromEnvironment(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "mnemonics.txt")
	err := os.WriteFile(fileName, []byte(phrase1+"\n"+phrase3+"\n"), 0o600)
	assert.Nil(t, err, "write")

	t.Setenv(keypair.MnemonicsFileEnv, fileName)

	accounts, err := keypair.ReadMnemonicFile("")
	assert.Nil(t, err, "read")
	assert.Equal(t, 2, accounts.Count(), "count")

	t.Setenv(keypair.MnemonicsFileEnv, "")
	_, err = keypair.ReadMnemonicFile("")
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "no file")
}

func TestRoles(t *testing.T) {
	for _, r := range []keypair.Role{keypair.Toketmaster, keypair.Issuer, keypair.Fraudster} {
		parsed, err := keypair.RoleFromString(r.String())
		assert.Nil(t, err, "parse %s", r)
		assert.Equal(t, r, parsed, "role %s", r)
	}
	_, err := keypair.RoleFromString("auditor")
	assert.Equal(t, fault.ErrNotFoundRole, err, "unknown role")
}
