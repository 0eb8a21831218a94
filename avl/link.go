// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// all structural changes go through these so that the child and up
// pointers are always updated together

func (p *Node) setLeft(child *Node) {
	p.left = child
	if nil != child {
		child.up = p
	}
}

func (p *Node) setRight(child *Node) {
	p.right = child
	if nil != child {
		child.up = p
	}
}

// put child into the slot of parent that currently holds old, a nil
// parent means old is the root
func (tree *Tree) replaceChild(parent *Node, old *Node, child *Node) {
	if nil == parent {
		tree.root = child
	} else if parent.left == old {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
}
