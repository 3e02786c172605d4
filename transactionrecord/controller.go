// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/toketmaster/account"
)

type controllerKind int

const (
	controllerDefault controllerKind = iota
	controllerAccount
	controllerNone
)

// Controller - one of the optional asset management roles
//
// the zero value is the default, which resolves to the creator
type Controller struct {
	kind    controllerKind
	account *account.Account
}

// DefaultController - resolve to the creating account
func DefaultController() Controller {
	return Controller{kind: controllerDefault}
}

// ControllerAccount - an explicit account
//
// a nil account is the same as the default
func ControllerAccount(acc *account.Account) Controller {
	if nil == acc {
		return DefaultController()
	}
	return Controller{kind: controllerAccount, account: acc}
}

// NoController - leave the role empty, it can never be set later
func NoController() Controller {
	return Controller{kind: controllerNone}
}

// Resolve - the account for the role, nil when empty
func (c Controller) Resolve(creator *account.Account) *account.Account {
	switch c.kind {
	case controllerAccount:
		return c.account
	case controllerNone:
		return nil
	default:
		return creator
	}
}

// IsDefault - role was not set
func (c Controller) IsDefault() bool {
	return controllerDefault == c.kind
}

// String - for logging
func (c Controller) String() string {
	switch c.kind {
	case controllerAccount:
		return c.account.String()
	case controllerNone:
		return "none"
	default:
		return "creator"
	}
}

// Controllers - the four management roles of an asset
type Controllers struct {
	Manager  Controller
	Reserve  Controller
	Freeze   Controller
	Clawback Controller
}
