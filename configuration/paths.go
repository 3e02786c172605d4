// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
)

// makeAbsolute - resolve each path against the directory
//
// with optional set, blank paths stay blank
func makeAbsolute(directory string, optional bool, paths ...*string) {
	for _, p := range paths {
		if optional && "" == *p {
			continue
		}
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(directory, *p)
		}
		*p = filepath.Clean(*p)
	}
}
