// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/base64"
	"encoding/hex"
)

// Signature - the type for a signature
type Signature []byte

// String - convert a binary signature to base64 for use by the fmt package (for %s)
func (signature Signature) String() string {
	return base64.StdEncoding.EncodeToString(signature)
}

// GoString - hex form for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	size := base64.StdEncoding.EncodedLen(len(signature))
	b := make([]byte, size)
	base64.StdEncoding.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	byteCount, err := base64.StdEncoding.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
