// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Put - insert a key/value pair, replacing the value of an existing
// key; returns true if a new node was added
func (tree *Tree) Put(key string, value int) bool {
	p, loc := tree.locate(key)
	switch loc {
	case emptyTree:
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return true
	case found:
		// no structural change so no rebalance
		p.value = value
		return false
	}

	q := newNode(key, value, p)
	if key < p.key {
		p.left = q
	} else {
		p.right = q
	}
	tree.count += 1

	updateHeights(p)

	// find the lowest unbalanced ancestor x, y and z are the next
	// two nodes on the path down toward q
	x, y, z := q, q, q
	for nil != x && !x.unbalanced() {
		z = y
		y = x
		x = x.up
	}
	if nil == x {
		return true
	}

	event := Event{
		Operation: Inserting,
		Key:       x.key,
		Shape:     shapeOf(x, y, z),
	}
	tree.notifyUnbalanced(event)
	tree.restructure(x, y, z, event.Shape)
	tree.notifyRebalanced(event)

	return true
}
