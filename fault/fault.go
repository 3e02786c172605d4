// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TimeoutError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound         = NotFoundError("account not found")
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrAssetNotFound           = NotFoundError("asset not found")
	ErrBadSignature            = InvalidError("bad signature")
	ErrConfigDirPath           = InvalidError("config is not a folder")
	ErrConfigNotTable          = InvalidError("configuration must return a table")
	ErrCryptoFailed            = ProcessError("encryption failed")
	ErrDecimalsTooLarge        = InvalidError("decimals is too large")
	ErrGenesisMismatch         = InvalidError("genesis hash mismatch")
	ErrHoldingNotFound         = NotFoundError("asset holding not found")
	ErrIdentityExists          = ExistsError("identity name already exists")
	ErrIncompatibleOptions     = InvalidError("incompatible options")
	ErrIndexerNotConfigured    = ProcessError("indexer is not configured")
	ErrInsufficientFunds       = InvalidError("insufficient funds")
	ErrInsufficientHolding     = InvalidError("insufficient asset holding")
	ErrInvalidAddress          = InvalidError("invalid address")
	ErrInvalidBackoff          = InvalidError("invalid backoff policy")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidKey              = InvalidError("invalid key")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidMetadataHash     = InvalidError("metadata hash must be 32 bytes")
	ErrInvalidNetwork          = InvalidError("invalid network")
	ErrInvalidPhrase           = InvalidError("invalid recovery phrase")
	ErrInvalidPhraseLength     = InvalidError("invalid recovery phrase length")
	ErrInvalidSalt             = InvalidError("invalid salt")
	ErrInvalidTransactionId    = InvalidError("invalid transaction id")
	ErrKeyLength               = InvalidError("key length is invalid")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotAssetCreation        = InvalidError("transaction did not create an asset")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrNotFoundIdentity        = NotFoundError("identity name not found")
	ErrNotFoundRole            = NotFoundError("network account role not found")
	ErrNotInitialised          = ProcessError("not initialised")
	ErrNotOptedIn              = InvalidError("receiver has not opted in to asset")
	ErrNotPrivateKey           = InvalidError("identity has no private key")
	ErrPasswordLength          = InvalidError("password length is invalid")
	ErrRejectedEmptyReason     = ProcessError("rejected without reason")
	ErrRequiredAssetId         = InvalidError("asset id is required")
	ErrRequiredIdentity        = InvalidError("identity is required")
	ErrRequiredReceiver        = InvalidError("receiver is required")
	ErrRequiredTransactionId   = InvalidError("transaction id is required")
	ErrRequiredUnitName        = InvalidError("unit name is required")
	ErrSenderMismatch          = InvalidError("signer is not the sender")
	ErrSignatureMismatch       = ProcessError("signature check after signing failed")
	ErrStringTooLong           = InvalidError("string is too long")
	ErrTimeout                 = TimeoutError("confirmation timed out")
	ErrTransactionExists       = ExistsError("transaction already in ledger")
	ErrTransactionExpired      = InvalidError("transaction outside its valid rounds")
	ErrTransactionFeeTooLow    = InvalidError("transaction fee below minimum")
	ErrTransactionNotConfirmed = NotFoundError("transaction not yet confirmed")
	ErrTransactionNotFound     = NotFoundError("transaction not found")
	ErrTransactionNotIndexed   = NotFoundError("transaction not yet indexed")
	ErrUnexpectedHTTPStatus    = ProcessError("unexpected http status")
	ErrUnsupportedTransaction  = InvalidError("unsupported transaction type")
	ErrVerifiedPassword        = InvalidError("verified password is different")
	ErrWrongPassword           = InvalidError("wrong password")
	ErrZeroInterval            = InvalidError("poll interval must be positive")
	ErrZeroMaxAttempts         = InvalidError("max attempts must be positive")
	ErrZeroTotal               = InvalidError("asset total must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e TimeoutError) Error() string  { return string(e) }

// RejectedError - the network refused a submitted transaction
type RejectedError struct {
	TxId   string
	Reason string
}

func (e *RejectedError) Error() string {
	if "" == e.TxId {
		return "transaction rejected: " + e.Reason
	}
	return fmt.Sprintf("transaction %s rejected: %s", e.TxId, e.Reason)
}

// OptInError - the receiver could not be opted in so the transfer
// was never attempted
type OptInError struct {
	AssetId uint64
	Account string
	Err     error
}

func (e *OptInError) Error() string {
	return fmt.Sprintf("opt-in of %s to asset %d failed: %v", e.Account, e.AssetId, e.Err)
}

func (e *OptInError) Unwrap() error { return e.Err }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrTimeout(e error) bool  { var t TimeoutError; return errors.As(e, &t) }
func IsErrRejected(e error) bool { var t *RejectedError; return errors.As(e, &t) }
func IsErrOptIn(e error) bool    { var t *OptInError; return errors.As(e, &t) }
