// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - asset creation and asset transfer records
//
// Records are validated when constructed, packed into the canonical
// msgpack form of the ledger ("TX" prefix followed by the encoded
// transaction) and signed with ed25519 over the packed bytes.  The
// transaction id is the unpadded base32 SHA-512/256 digest of the
// packed bytes.
//
// Two record types are supported:
//
//   AssetConfig    create an asset (type "acfg")
//   AssetTransfer  move units of an asset (type "axfer"); a zero
//                  amount self transfer is an opt-in
package transactionrecord
