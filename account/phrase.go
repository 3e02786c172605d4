// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/mnemonic"

	"github.com/bitmark-inc/toketmaster/fault"
)

// 24 data words and one checksum word
const phraseLength = 25

// PhraseFromSeed - convert a 32 byte seed to a recovery phrase
func PhraseFromSeed(seed []byte) ([]string, error) {
	if 32 != len(seed) {
		return nil, fault.ErrKeyLength
	}

	s, err := mnemonic.FromKey(seed)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidPhrase, err)
	}

	phrase := strings.Fields(s)
	if phraseLength != len(phrase) {
		return nil, fault.ErrInvalidPhraseLength
	}
	return phrase, nil
}

// SeedFromPhrase - recover the 32 byte seed from a recovery phrase
//
// an unknown word or a checksum mismatch is fault.ErrInvalidPhrase
func SeedFromPhrase(phrase []string) ([]byte, error) {
	if phraseLength != len(phrase) {
		return nil, fault.ErrInvalidPhraseLength
	}

	seed, err := mnemonic.ToKey(strings.Join(phrase, " "))
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidPhrase, err)
	}
	return seed, nil
}

// PrivateKeyFromPhrase - a private key from a space separated phrase
func PrivateKeyFromPhrase(phrase string) (*PrivateKey, error) {
	seed, err := SeedFromPhrase(strings.Fields(phrase))
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed)
}

// Phrase - the recovery phrase of a private key
func (privateKey *PrivateKey) Phrase() string {
	phrase, err := mnemonic.FromPrivateKey(privateKey.PrivateKey)
	if nil != err {
		return ""
	}
	return phrase
}
