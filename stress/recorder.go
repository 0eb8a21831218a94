// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"github.com/bitmark-inc/avltree/avl"
)

// recorder - counts rebalances by operation and shape
type recorder struct {
	insertions Rebalances
	deletions  Rebalances
	unbalanced int // notifications not yet followed by Rebalanced
}

func (rec *recorder) Unbalanced(tree *avl.Tree, event avl.Event) {
	rec.unbalanced += 1
}

func (rec *recorder) Rebalanced(tree *avl.Tree, event avl.Event) {
	rec.unbalanced -= 1

	r := &rec.insertions
	if avl.Deleting == event.Operation {
		r = &rec.deletions
	}
	switch event.Shape {
	case avl.LeftLeft:
		r.LeftLeft += 1
	case avl.LeftRight:
		r.LeftRight += 1
	case avl.RightRight:
		r.RightRight += 1
	case avl.RightLeft:
		r.RightLeft += 1
	}
}
