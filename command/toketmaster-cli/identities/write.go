// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identities

import (
	"encoding/json"
	"os"
)

// Save - write the store, keeping the previous file as a backup
func Save(fileName string, store *Store) error {

	tempFile := fileName + ".new"
	previousFile := fileName + ".bk"

	_ = os.Remove(tempFile)

	data, err := json.MarshalIndent(store, "", "  ")
	if nil != err {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(tempFile, data, 0600); nil != err {
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(fileName, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, fileName)
}
