// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
)

// write a command result as indented JSON to the output
//
// ticket URLs are printed as given, so no HTML escaping
func (m *metadata) printJson(result interface{}) error {
	encoder := json.NewEncoder(m.w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(result); nil != err {
		if nil != m.log {
			m.log.Errorf("output error: %s", err)
		}
		return err
	}
	return nil
}
