// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  The tree
// invariant checker returns ProcessError values, lookups of absent
// keys return a NotFoundError and malformed operator input is an
// InvalidError.
package fault
