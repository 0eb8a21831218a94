// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// left-most node of a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// right-most node of a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - in-order successor of a node, nil after the last
//
// without a right sub-tree the successor is the first ancestor that
// is reached from its left side
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	child := p
	for up := p.up; nil != up; up = up.up {
		if up.left == child {
			return up
		}
		child = up
	}
	return nil
}

// Prev - in-order predecessor of a node, nil before the first
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.last()
	}
	child := p
	for up := p.up; nil != up; up = up.up {
		if up.right == child {
			return up
		}
		child = up
	}
	return nil
}
