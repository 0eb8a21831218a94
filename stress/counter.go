// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"sync/atomic"
)

// counter - shared count of operations, updated from every worker
type counter uint64

// increment - add 1 to a counter, returns new value
func (c *counter) increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// value - returns current value
func (c *counter) value() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
