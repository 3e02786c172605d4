// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package simulator - an in-process ledger
//
// Implements ledger.Gateway over a LevelDB store with the same
// acceptance rules the network applies to asset transactions.  Every
// accepted transaction is confirmed in a round of its own.  Indexed
// lookups can be made to lag behind confirmation to exercise callers
// that must wait for the indexer.
package simulator

import (
	"context"
	"crypto/sha512"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/storage"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// defaults
const (
	DefaultGenesisId = "sandnet-v1"
	DefaultMinFee    = 1000

	firstAssetId = 1000
	firstRound   = 1
)

// counter keys
var (
	roundKey = []byte("round")
	assetKey = []byte("asset")
)

// Allocation - balance given to an account when the store is created
type Allocation struct {
	Address    string `gluamapper:"address" json:"address"`
	MicroAlgos uint64 `gluamapper:"micro_algos" json:"micro_algos"`
}

// Config - simulator setup
type Config struct {
	Database  string       `gluamapper:"database" json:"database"` // empty for memory
	GenesisId string       `gluamapper:"genesis_id" json:"genesis_id"`
	MinFee    uint64       `gluamapper:"min_fee" json:"min_fee"`
	IndexLag  int          `gluamapper:"index_lag" json:"index_lag"`
	Genesis   []Allocation `gluamapper:"genesis" json:"genesis"`
}

// Simulator - in-process ledger
type Simulator struct {
	sync.Mutex

	log         *logger.L
	store       *storage.Store
	genesisId   string
	genesisHash [32]byte
	minFee      uint64
	indexLag    int
	lookups     map[string]int
}

// New - open the simulator store
func New(config Config, log *logger.L) (*Simulator, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	var store *storage.Store
	var err error
	if "" == config.Database {
		store, err = storage.OpenMemory()
	} else {
		store, err = storage.Open(config.Database, storage.ReadWrite)
	}
	if nil != err {
		return nil, err
	}

	genesisId := config.GenesisId
	if "" == genesisId {
		genesisId = DefaultGenesisId
	}
	minFee := config.MinFee
	if 0 == minFee {
		minFee = DefaultMinFee
	}

	sim := &Simulator{
		log:         log,
		store:       store,
		genesisId:   genesisId,
		genesisHash: sha512.Sum512_256([]byte(genesisId)),
		minFee:      minFee,
		indexLag:    config.IndexLag,
		lookups:     make(map[string]int),
	}

	// allocations only apply to a new store
	if _, found := store.Pool.Counters.GetN(roundKey); !found {
		for _, a := range config.Genesis {
			if err := sim.Fund(a.Address, a.MicroAlgos); nil != err {
				store.Close()
				return nil, fmt.Errorf("genesis: %q: %w", a.Address, err)
			}
		}
		store.Pool.Counters.PutN(roundKey, firstRound)
	}

	log.Infof("genesis: %s  minimum fee: %d  index lag: %d  allocations: %d", genesisId, minFee, config.IndexLag, len(config.Genesis))

	return sim, nil
}

// Close - release the store
func (s *Simulator) Close() {
	s.Lock()
	defer s.Unlock()
	s.store.Close()
}

// Round - the last confirmed round
func (s *Simulator) Round() uint64 {
	round, _ := s.store.Pool.Counters.GetN(roundKey)
	return round
}

// Fund - credit an account with microAlgos
func (s *Simulator) Fund(address string, microAlgos uint64) error {
	acc, err := account.AccountFromString(address)
	if nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	balance, _ := s.store.Pool.Accounts.GetN(acc.Bytes())
	s.store.Pool.Accounts.PutN(acc.Bytes(), balance+microAlgos)
	s.log.Debugf("fund: %s  +%d  balance: %d", address, microAlgos, balance+microAlgos)
	return nil
}

// SuggestedParams - parameters for the next round
func (s *Simulator) SuggestedParams(ctx context.Context) (*transactionrecord.Params, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	return transactionrecord.NewParams(s.Round(), s.minFee, s.genesisId, s.genesisHash), nil
}

// Submit - apply a signed transaction
func (s *Simulator) Submit(ctx context.Context, signed *transactionrecord.Signed) (string, error) {
	if err := ctx.Err(); nil != err {
		return "", err
	}
	if nil == signed || nil == signed.Transaction {
		return "", fault.ErrMissingParameters
	}

	s.Lock()
	defer s.Unlock()

	err := s.apply(signed)
	if nil != err {
		s.log.Warnf("rejected: %s  error: %s", signed.TxId, err)
		return "", &fault.RejectedError{
			TxId:   signed.TxId,
			Reason: err.Error(),
		}
	}
	s.log.Infof("accepted: %s  type: %s  round: %d", signed.TxId, signed.Transaction.Type(), s.Round())
	return signed.TxId, nil
}

// PendingStatus - confirmed round of a transaction
func (s *Simulator) PendingStatus(ctx context.Context, txId string) (*ledger.PendingStatus, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	record, err := s.transaction(txId)
	if nil != err {
		return nil, err
	}
	return &ledger.PendingStatus{
		TxId:           txId,
		ConfirmedRound: record.ConfirmedRound,
		AssetIndex:     record.CreatedAssetIndex,
	}, nil
}

// AccountInfo - balance, holdings and created assets of an account
func (s *Simulator) AccountInfo(ctx context.Context, address string) (*ledger.AccountInfo, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	acc, err := account.AccountFromString(address)
	if nil != err {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	balance, _ := s.store.Pool.Accounts.GetN(acc.Bytes())
	info := &ledger.AccountInfo{
		Address:       address,
		Amount:        balance,
		Round:         s.Round(),
		Assets:        make([]ledger.AssetHolding, 0),
		CreatedAssets: make([]ledger.CreatedAsset, 0),
	}

	err = s.store.Pool.Holdings.NewFetchCursor().Prefix(acc.Bytes()).Map(func(key []byte, value []byte) error {
		h, err := decodeHolding(key[len(key)-8:], value)
		if nil != err {
			return err
		}
		info.Assets = append(info.Assets, h)
		return nil
	})
	if nil != err {
		return nil, err
	}

	err = s.store.Pool.Created.NewFetchCursor().Prefix(acc.Bytes()).Map(func(key []byte, value []byte) error {
		created, err := s.asset(binary.BigEndian.Uint64(key[len(key)-8:]))
		if nil != err {
			return err
		}
		info.CreatedAssets = append(info.CreatedAssets, *created)
		return nil
	})
	if nil != err {
		return nil, err
	}

	return info, nil
}

// IndexedTransaction - indexer view of a confirmed transaction
func (s *Simulator) IndexedTransaction(ctx context.Context, txId string) (*ledger.TransactionRecord, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	record, err := s.transaction(txId)
	if nil != err {
		return nil, fault.ErrTransactionNotIndexed
	}

	s.Lock()
	defer s.Unlock()
	if s.lookups[txId] < s.indexLag {
		s.lookups[txId] += 1
		return nil, fault.ErrTransactionNotIndexed
	}
	return record, nil
}

func (s *Simulator) transaction(txId string) (*ledger.TransactionRecord, error) {
	round, data := s.store.Pool.Transactions.GetNB([]byte(txId))
	if nil == data {
		return nil, fault.ErrTransactionNotFound
	}
	var record ledger.TransactionRecord
	err := json.Unmarshal(data, &record)
	if nil != err {
		return nil, err
	}
	record.ConfirmedRound = round
	return &record, nil
}

func (s *Simulator) asset(assetId uint64) (*ledger.CreatedAsset, error) {
	data := s.store.Pool.Assets.Get(uint64Key(assetId))
	if nil == data {
		return nil, fault.ErrAssetNotFound
	}
	var created ledger.CreatedAsset
	err := json.Unmarshal(data, &created)
	if nil != err {
		return nil, err
	}
	return &created, nil
}

func uint64Key(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

func holdingKey(acc *account.Account, assetId uint64) []byte {
	return append(append([]byte{}, acc.Bytes()...), uint64Key(assetId)...)
}

func encodeHolding(amount uint64, frozen bool) []byte {
	value := make([]byte, 9)
	binary.BigEndian.PutUint64(value, amount)
	if frozen {
		value[8] = 1
	}
	return value
}

func decodeHolding(assetKey []byte, value []byte) (ledger.AssetHolding, error) {
	if 9 != len(value) || 8 != len(assetKey) {
		return ledger.AssetHolding{}, fmt.Errorf("corrupt holding: %x", value)
	}
	return ledger.AssetHolding{
		AssetId:  binary.BigEndian.Uint64(assetKey),
		Amount:   binary.BigEndian.Uint64(value[:8]),
		IsFrozen: 0 != value[8],
	}, nil
}
