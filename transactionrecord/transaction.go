// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/bitmark-inc/toketmaster/account"
	"github.com/bitmark-inc/toketmaster/fault"
)

// TxType - type code for transactions
type TxType string

// the record types
const (
	AssetConfigType   = TxType("acfg")
	AssetTransferType = TxType("axfer")
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Type() TxType
	GetSender() *account.Account
	GetHeader() *Header
	Pack() (Packed, error)
	TxId() (string, error)

	wire() (types.Transaction, error)
}

// default number of rounds a transaction remains valid
const defaultValidRounds = 1000

// Params - suggested parameters from the network
type Params struct {
	Fee         uint64   `json:"fee"`    // per byte, informational
	MinFee      uint64   `json:"minFee"` // flat minimum
	FirstValid  uint64   `json:"firstValid"`
	LastValid   uint64   `json:"lastValid"`
	GenesisId   string   `json:"genesisId"`
	GenesisHash [32]byte `json:"genesisHash"`
}

// NewParams - parameters valid from the given round
func NewParams(lastRound uint64, minFee uint64, genesisId string, genesisHash [32]byte) *Params {
	return &Params{
		MinFee:      minFee,
		FirstValid:  lastRound,
		LastValid:   lastRound + defaultValidRounds,
		GenesisId:   genesisId,
		GenesisHash: genesisHash,
	}
}

// Header - fields common to every record
type Header struct {
	Fee         uint64   `json:"fee"`
	FirstValid  uint64   `json:"firstValid"`
	LastValid   uint64   `json:"lastValid"`
	Note        []byte   `json:"note,omitempty"`
	GenesisId   string   `json:"genesisId"`
	GenesisHash [32]byte `json:"genesisHash"`
}

// header from params
//
// a zero fee selects the network minimum, any other value is used as
// a flat fee and may be refused by the network if too low
func (p *Params) header(fee uint64) (Header, error) {
	if nil == p {
		return Header{}, fault.ErrMissingParameters
	}
	if p.LastValid < p.FirstValid {
		return Header{}, fault.ErrTransactionExpired
	}
	if 0 == fee {
		fee = p.MinFee
	}
	return Header{
		Fee:         fee,
		FirstValid:  p.FirstValid,
		LastValid:   p.LastValid,
		GenesisId:   p.GenesisId,
		GenesisHash: p.GenesisHash,
	}, nil
}

// AssetConfig - create a new asset
type AssetConfig struct {
	Header
	Sender   *account.Account `json:"sender"`
	Metadata AssetMetadata    `json:"metadata"`
	Manager  *account.Account `json:"manager,omitempty"`
	Reserve  *account.Account `json:"reserve,omitempty"`
	Freeze   *account.Account `json:"freeze,omitempty"`
	Clawback *account.Account `json:"clawback,omitempty"`
}

// NewAssetConfig - build an asset creation record
//
// controllers left at their default resolve to the creator
func NewAssetConfig(creator *account.Account, metadata *AssetMetadata, controllers Controllers, params *Params, fee uint64) (*AssetConfig, error) {
	if nil == creator || nil == metadata {
		return nil, fault.ErrMissingParameters
	}
	if err := metadata.Validate(); nil != err {
		return nil, err
	}
	header, err := params.header(fee)
	if nil != err {
		return nil, err
	}
	return &AssetConfig{
		Header:   header,
		Sender:   creator,
		Metadata: *metadata,
		Manager:  controllers.Manager.Resolve(creator),
		Reserve:  controllers.Reserve.Resolve(creator),
		Freeze:   controllers.Freeze.Resolve(creator),
		Clawback: controllers.Clawback.Resolve(creator),
	}, nil
}

// Type - record type code
func (c *AssetConfig) Type() TxType { return AssetConfigType }

// GetSender - account paying for and signing the record
func (c *AssetConfig) GetSender() *account.Account { return c.Sender }

// GetHeader - common fields
func (c *AssetConfig) GetHeader() *Header { return &c.Header }

// AssetTransfer - move units of an asset between accounts
type AssetTransfer struct {
	Header
	Sender   *account.Account `json:"sender"`
	Receiver *account.Account `json:"receiver"`
	AssetId  uint64           `json:"assetId"`
	Amount   uint64           `json:"amount"`
}

// NewAssetTransfer - build an asset transfer record
func NewAssetTransfer(sender *account.Account, receiver *account.Account, assetId uint64, amount uint64, params *Params, fee uint64) (*AssetTransfer, error) {
	if nil == sender {
		return nil, fault.ErrMissingParameters
	}
	if nil == receiver {
		return nil, fault.ErrRequiredReceiver
	}
	if 0 == assetId {
		return nil, fault.ErrRequiredAssetId
	}
	header, err := params.header(fee)
	if nil != err {
		return nil, err
	}
	return &AssetTransfer{
		Header:   header,
		Sender:   sender,
		Receiver: receiver,
		AssetId:  assetId,
		Amount:   amount,
	}, nil
}

// NewOptIn - zero amount transfer to self at the minimum fee
func NewOptIn(holder *account.Account, assetId uint64, params *Params) (*AssetTransfer, error) {
	return NewAssetTransfer(holder, holder, assetId, 0, params, 0)
}

// IsOptIn - zero amount transfer to self
func (t *AssetTransfer) IsOptIn() bool {
	return 0 == t.Amount && t.Sender.Equal(t.Receiver)
}

// Type - record type code
func (t *AssetTransfer) Type() TxType { return AssetTransferType }

// GetSender - account paying for and signing the record
func (t *AssetTransfer) GetSender() *account.Account { return t.Sender }

// GetHeader - common fields
func (t *AssetTransfer) GetHeader() *Header { return &t.Header }
