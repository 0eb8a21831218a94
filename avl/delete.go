// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific key from the tree, returning its value
// and true, or zero and false if the key was not present
func (tree *Tree) Delete(key string) (int, bool) {
	p, loc := tree.locate(key)
	if found != loc {
		return 0, false
	}
	value := p.value

	// two children: take over the successor's data and remove the
	// successor instead, it has no left child
	if nil != p.left && nil != p.right {
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p = s
	}

	child := p.left
	if nil == child {
		child = p.right
	}
	parent := p.up
	tree.replaceChild(parent, p, child)
	tree.count -= 1
	freeNode(p)

	updateHeights(parent)
	tree.rebalanceUp(parent)

	return value, true
}

// examine every node from p to the root, rotating where the balance
// is violated
func (tree *Tree) rebalanceUp(p *Node) {
	for ; nil != p; p = p.up {
		p.updateHeight()
		bf := p.balance()
		if bf >= -1 && bf <= 1 {
			continue
		}

		var shape Shape
		if bf > 1 {
			if p.left.balance() >= 0 {
				shape = LeftLeft
			} else {
				shape = LeftRight
			}
		} else {
			if p.right.balance() <= 0 {
				shape = RightRight
			} else {
				shape = RightLeft
			}
		}

		event := Event{
			Operation: Deleting,
			Key:       p.key,
			Shape:     shape,
		}
		tree.notifyUnbalanced(event)

		switch shape {
		case LeftLeft:
			p = tree.rotateRight(p)
		case LeftRight:
			tree.rotateLeft(p.left)
			p = tree.rotateRight(p)
		case RightRight:
			p = tree.rotateLeft(p)
		case RightLeft:
			tree.rotateRight(p.right)
			p = tree.rotateLeft(p)
		}

		// the sub-tree may now be shorter
		updateHeights(p.up)
		tree.notifyRebalanced(event)
	}
}
