// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// result of a descent through the tree
type location int

const (
	emptyTree      location = iota // no root, nothing returned
	insertionPoint location = iota // node whose child slot toward key is empty
	found          location = iota // node holding key
)

// internal: shared descent for lookup and insert
func (tree *Tree) locate(key string) (*Node, location) {
	p := tree.root
	if nil == p {
		return nil, emptyTree
	}
	for {
		switch {
		case key < p.key:
			if nil == p.left {
				return p, insertionPoint
			}
			p = p.left
		case key > p.key:
			if nil == p.right {
				return p, insertionPoint
			}
			p = p.right
		default:
			return p, found
		}
	}
}

// Search - find a specific key, nil if not present
func (tree *Tree) Search(key string) *Node {
	p, loc := tree.locate(key)
	if found != loc {
		return nil
	}
	return p
}

// Get - value stored for key, fault.ErrKeyNotFound if absent
func (tree *Tree) Get(key string) (int, error) {
	p := tree.Search(key)
	if nil == p {
		return 0, fault.ErrKeyNotFound
	}
	return p.value, nil
}
