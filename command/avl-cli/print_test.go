// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	entry := boundEntry{
		Keys:      7,
		Bound:     4.5,
		MaxHeight: 4,
		MinHeight: 3,
	}

	var buffer bytes.Buffer
	err := printReport(&buffer, "json", entry)
	assert.NoError(t, err, "json")
	assert.Equal(t, "{\n  \"keys\": 7,\n  \"bound\": 4.5,\n  \"max_height\": 4,\n  \"min_height\": 3\n}\n", buffer.String(), "json")

	buffer.Reset()
	err = printReport(&buffer, "yaml", entry)
	assert.NoError(t, err, "yaml")
	assert.Equal(t, "keys: 7\nbound: 4.5\nmax_height: 4\nmin_height: 3\n", buffer.String(), "yaml")

	err = printReport(&buffer, "xml", entry)
	assert.Error(t, err, "xml")
}
