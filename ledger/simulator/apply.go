// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
	"github.com/bitmark-inc/toketmaster/ledger"
	"github.com/bitmark-inc/toketmaster/storage"
	"github.com/bitmark-inc/toketmaster/transactionrecord"
)

// apply - validate then write a transaction in a single batch
//
// nothing is written unless every check passes
func (s *Simulator) apply(signed *transactionrecord.Signed) error {
	tx := signed.Transaction
	sender := tx.GetSender()
	header := tx.GetHeader()

	if err := signed.Verify(); nil != err {
		return fmt.Errorf("invalid signature: %w", err)
	}
	if !signed.IsAuthorisedBySender() {
		return fmt.Errorf("should have been authorized by %s but was actually authorized by %s: %w", sender, signed.Signer, fault.ErrSenderMismatch)
	}

	if header.GenesisHash != s.genesisHash || header.GenesisId != s.genesisId {
		return fault.ErrGenesisMismatch
	}

	round := s.Round() + 1
	if round < header.FirstValid || round > header.LastValid {
		return fmt.Errorf("round %d outside [%d, %d]: %w", round, header.FirstValid, header.LastValid, fault.ErrTransactionExpired)
	}
	if header.Fee < s.minFee {
		return fmt.Errorf("fee %d below %d: %w", header.Fee, s.minFee, fault.ErrTransactionFeeTooLow)
	}
	if s.store.Pool.Transactions.Has([]byte(signed.TxId)) {
		return fault.ErrTransactionExists
	}

	balance, _ := s.store.Pool.Accounts.GetN(sender.Bytes())
	if balance < header.Fee {
		return fmt.Errorf("overspend: account %s balance %d fee %d: %w", sender, balance, header.Fee, fault.ErrInsufficientFunds)
	}

	batch := s.store.NewBatch()
	record := &ledger.TransactionRecord{
		TxId:   signed.TxId,
		Type:   string(tx.Type()),
		Sender: sender.String(),
	}

	var err error
	switch t := tx.(type) {
	case *transactionrecord.AssetConfig:
		err = s.applyAssetConfig(batch, t, record)
	case *transactionrecord.AssetTransfer:
		err = s.applyAssetTransfer(batch, t, record)
	default:
		err = fault.ErrUnsupportedTransaction
	}
	if nil != err {
		batch.Abort()
		return err
	}

	data, err := json.Marshal(record)
	if nil != err {
		batch.Abort()
		return err
	}

	batch.PutN(s.store.Pool.Accounts, sender.Bytes(), balance-header.Fee)
	batch.Put(s.store.Pool.Transactions, []byte(signed.TxId), append(uint64Key(round), data...))
	batch.PutN(s.store.Pool.Counters, roundKey, round)

	return batch.Commit()
}

func (s *Simulator) applyAssetConfig(batch *storage.Batch, c *transactionrecord.AssetConfig, record *ledger.TransactionRecord) error {
	if err := c.Metadata.Validate(); nil != err {
		return err
	}

	last, found := s.store.Pool.Counters.GetN(assetKey)
	if !found {
		last = firstAssetId - 1
	}
	assetId := last + 1

	params := ledger.AssetParams{
		Creator:       c.Sender.String(),
		Total:         c.Metadata.Total,
		Decimals:      c.Metadata.Decimals,
		DefaultFrozen: c.Metadata.DefaultFrozen,
		UnitName:      c.Metadata.UnitName,
		AssetName:     c.Metadata.AssetName,
		URL:           c.Metadata.URL,
		MetadataHash:  c.Metadata.MetadataHash,
		Manager:       addressOrEmpty(c.Manager),
		Reserve:       addressOrEmpty(c.Reserve),
		Freeze:        addressOrEmpty(c.Freeze),
		Clawback:      addressOrEmpty(c.Clawback),
	}
	data, err := json.Marshal(ledger.CreatedAsset{
		Index:  assetId,
		Params: params,
	})
	if nil != err {
		return err
	}

	batch.Put(s.store.Pool.Assets, uint64Key(assetId), data)
	batch.Put(s.store.Pool.Created, holdingKey(c.Sender, assetId), []byte{})
	batch.Put(s.store.Pool.Holdings, holdingKey(c.Sender, assetId), encodeHolding(c.Metadata.Total, false))
	batch.PutN(s.store.Pool.Counters, assetKey, assetId)

	record.CreatedAssetIndex = assetId
	record.AssetParams = &params
	return nil
}

func (s *Simulator) applyAssetTransfer(batch *storage.Batch, t *transactionrecord.AssetTransfer, record *ledger.TransactionRecord) error {
	created, err := s.asset(t.AssetId)
	if nil != err {
		return fmt.Errorf("asset %d does not exist: %w", t.AssetId, err)
	}

	record.AssetId = t.AssetId
	record.Amount = t.Amount
	record.Receiver = t.Receiver.String()

	senderKey := holdingKey(t.Sender, t.AssetId)
	_, senderData := s.store.Pool.Holdings.GetNB(senderKey)

	if t.IsOptIn() {
		if nil == senderData {
			frozen := created.Params.DefaultFrozen
			batch.Put(s.store.Pool.Holdings, senderKey, encodeHolding(0, frozen))
		}
		return nil
	}

	if nil == senderData {
		return fmt.Errorf("asset %d missing from %s: %w", t.AssetId, t.Sender, fault.ErrNotOptedIn)
	}
	receiverKey := holdingKey(t.Receiver, t.AssetId)
	_, receiverData := s.store.Pool.Holdings.GetNB(receiverKey)
	if nil == receiverData {
		return fmt.Errorf("receiver error: must optin, asset %d missing from %s: %w", t.AssetId, t.Receiver, fault.ErrNotOptedIn)
	}

	from, err := decodeHolding(uint64Key(t.AssetId), s.store.Pool.Holdings.Get(senderKey))
	if nil != err {
		return err
	}
	to, err := decodeHolding(uint64Key(t.AssetId), s.store.Pool.Holdings.Get(receiverKey))
	if nil != err {
		return err
	}

	// the creator is never frozen for its own asset
	creator := created.Params.Creator
	if from.IsFrozen && t.Sender.String() != creator {
		return fmt.Errorf("asset %d frozen in %s: %w", t.AssetId, t.Sender, fault.ErrInsufficientHolding)
	}
	if to.IsFrozen && t.Receiver.String() != creator {
		return fmt.Errorf("asset %d frozen in %s: %w", t.AssetId, t.Receiver, fault.ErrInsufficientHolding)
	}
	if from.Amount < t.Amount {
		return fmt.Errorf("underflow on subtracting %d from sender amount %d: %w", t.Amount, from.Amount, fault.ErrInsufficientHolding)
	}

	if t.Sender.Equal(t.Receiver) {
		return nil
	}
	batch.Put(s.store.Pool.Holdings, senderKey, encodeHolding(from.Amount-t.Amount, from.IsFrozen))
	batch.Put(s.store.Pool.Holdings, receiverKey, encodeHolding(to.Amount+t.Amount, to.IsFrozen))
	return nil
}

func addressOrEmpty(acc *account.Account) string {
	if nil == acc {
		return ""
	}
	return acc.String()
}
