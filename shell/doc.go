// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - drive a tree from a stream of operation codes
//
// the input is a sequence of white space separated tokens: first the
// number of operations, then for each operation a numeric code
// followed by a key and, for an insert, a value.  The tree is
// rendered after every operation.
package shell
