// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/bitmark-inc/avltree/fault"
)

// action performed for an operation code
type action int

const (
	actionInsert action = iota
	actionDelete action = iota
	actionSearch action = iota
)

// names of the code tables
const (
	CanonicalCodes    = "canonical"
	InsertSearchCodes = "insert-search"
)

// a code table maps each numeric code to its action, entries are in
// code order for the help text
type codeEntry struct {
	code        int
	action      action
	description string
}

type codeTable []codeEntry

var codeTables = map[string]codeTable{
	CanonicalCodes: {
		{1, actionInsert, "insertion"},
		{2, actionDelete, "deletion"},
		{3, actionSearch, "search"},
	},
	InsertSearchCodes: {
		{1, actionInsert, "insertion"},
		{2, actionSearch, "search"},
	},
}

// ValidCodeTable - true if name is a known code table
func ValidCodeTable(name string) bool {
	_, ok := codeTables[name]
	return ok
}

func lookupCodeTable(name string) (codeTable, error) {
	if table, ok := codeTables[name]; ok {
		return table, nil
	}
	return nil, fault.ErrInvalidCodeTable
}

// find the action for a code
func (table codeTable) action(code int) (action, bool) {
	for _, e := range table {
		if code == e.code {
			return e.action, true
		}
	}
	return 0, false
}
