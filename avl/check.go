// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %q   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify all the tree invariants
//
// returns the first failure found as one of: fault.ErrParentMismatch,
// fault.ErrOrderViolation, fault.ErrHeightMismatch,
// fault.ErrBalanceViolation or fault.ErrCountMismatch
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: returns number of nodes in the sub-tree; all keys must
// lie strictly between low and high when those are not nil
func check(p *Node, up *Node, low *string, high *string) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fault.ErrParentMismatch
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, fault.ErrOrderViolation
	}

	nl, err := check(p.left, p, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p, &p.key, high)
	if nil != err {
		return 0, err
	}

	lh := p.left.getHeight()
	rh := p.right.getHeight()
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if p.height != h {
		return 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fault.ErrBalanceViolation
	}
	return 1 + nl + nr, nil
}

// printable key for a possibly nil node
func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
