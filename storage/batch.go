// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/toketmaster/fault"
)

// Batch - writes to several pools applied in one step
//
// reads through the pools do not see the pending writes
type Batch struct {
	store *Store
	batch *leveldb.Batch
}

// Put - queue a key/value pair
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	b.batch.Put(p.prefixKey(key), value)
}

// PutN - queue an 8 byte big endian value
func (b *Batch) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	b.batch.Put(p.prefixKey(key), buffer)
}

// Delete - queue a key removal
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	b.batch.Delete(p.prefixKey(key))
}

// Len - number of queued writes
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Commit - write all queued records
func (b *Batch) Commit() error {
	b.store.RLock()
	defer b.store.RUnlock()
	if nil == b.store.db {
		return fault.ErrNotInitialised
	}
	err := b.store.db.Write(b.batch, nil)
	b.batch.Reset()
	return err
}

// Abort - drop all queued records
func (b *Batch) Abort() {
	b.batch.Reset()
}
