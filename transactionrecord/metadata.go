// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/toketmaster/fault"
)

// byte sizes for various fields
const (
	maxUnitNameLength  = 8
	maxAssetNameLength = 32
	maxURLLength       = 96
	maxDecimals        = 19
	metadataHashLength = 32
)

// AssetMetadata - description of an asset to be created
type AssetMetadata struct {
	UnitName      string `json:"unitName"`
	AssetName     string `json:"assetName"`
	URL           string `json:"url"`
	Decimals      uint32 `json:"decimals"`
	DefaultFrozen bool   `json:"defaultFrozen"`
	Total         uint64 `json:"total"`
	MetadataHash  []byte `json:"metadataHash,omitempty"`
}

// NewAssetMetadata - validated copy of asset metadata
func NewAssetMetadata(m AssetMetadata) (*AssetMetadata, error) {
	if err := m.Validate(); nil != err {
		return nil, err
	}
	if 0 != len(m.MetadataHash) {
		m.MetadataHash = append([]byte{}, m.MetadataHash...)
	}
	return &m, nil
}

// NewTicket - a single indivisible unit
func NewTicket(unitName string, assetName string, url string) (*AssetMetadata, error) {
	return NewAssetMetadata(AssetMetadata{
		UnitName:  unitName,
		AssetName: assetName,
		URL:       url,
		Total:     1,
	})
}

// Validate - check field limits
//
// lengths are in bytes as the ledger counts them
func (m *AssetMetadata) Validate() error {
	if 0 == m.Total {
		return fault.ErrZeroTotal
	}
	if 0 == len(m.UnitName) {
		return fault.ErrRequiredUnitName
	}
	if len(m.UnitName) > maxUnitNameLength {
		return fault.ErrStringTooLong
	}
	if len(m.AssetName) > maxAssetNameLength {
		return fault.ErrStringTooLong
	}
	if len(m.URL) > maxURLLength {
		return fault.ErrStringTooLong
	}
	if m.Decimals > maxDecimals {
		return fault.ErrDecimalsTooLarge
	}
	if 0 != len(m.MetadataHash) && metadataHashLength != len(m.MetadataHash) {
		return fault.ErrInvalidMetadataHash
	}
	return nil
}
