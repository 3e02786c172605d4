// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBrokenPipe
}

func TestPrintJson(t *testing.T) {
	var buffer bytes.Buffer
	m := &metadata{w: &buffer}

	err := m.printJson(struct {
		URL string `json:"url"`
	}{
		URL: "https://tickets.example.com/show?row=1&seat=2",
	})
	assert.Nil(t, err, "print")
	assert.Equal(t, "{\n  \"url\": \"https://tickets.example.com/show?row=1&seat=2\"\n}\n", buffer.String(), "output")

	m = &metadata{w: brokenWriter{}}
	err = m.printJson(map[string]int{"round": 1})
	assert.Equal(t, errBrokenPipe, err, "write error")

	m = &metadata{w: &buffer}
	err = m.printJson(make(chan int))
	assert.NotNil(t, err, "unencodable")
}
