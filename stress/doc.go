// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stress - randomised trials against the AVL tree
//
// each trial owns a private tree and runs a seeded sequence of inserts
// and deletes, checking the tree invariants, the height bound and the
// stored values as it goes.  Trials are spread over a set of worker go
// routines; the result is a Report that can be printed as JSON or YAML.
package stress
