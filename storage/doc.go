// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the ledger simulator data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.  The
// database may be on disk or held in memory.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. round        = big endian uint64 (8 bytes)
// 4. txId         = base32 transaction id text
// 5. asset id     = big endian uint64 (8 bytes)
// 6. account      = 32 byte ed25519 public key
// 7. *others*     = byte values of various length
//
// Accounts:
//
//   A ++ account               - balance in microAlgos
//                                data: big endian uint64
//
// Holdings:
//
//   H ++ account ++ asset id   - asset holding
//                                data: amount ++ frozen flag (1 byte)
//
// Assets:
//
//   S ++ asset id              - created asset
//                                data: JSON asset record
//   C ++ account ++ asset id   - assets created by an account
//                                data: empty
//
// Transactions:
//
//   T ++ txId                  - confirmed transactions
//                                data: round ++ JSON indexed record
//
// Counters:
//
//   N ++ name                  - last value used
//                                data: big endian uint64
//
// Testing:
//   Z ++ key                   - testing data
package storage
