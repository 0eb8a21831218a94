// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single rotation right about y, returns the new sub-tree root
//
//         y            x
//        / \          / \
//       x   T3  =>  T1   y
//      / \              / \
//     T1  T2           T2  T3
func (tree *Tree) rotateRight(y *Node) *Node {
	x := y.left
	t2 := x.right

	tree.replaceChild(y.up, y, x)
	y.setLeft(t2)
	x.setRight(y)

	y.updateHeight()
	x.updateHeight()
	return x
}

// single rotation left about x, mirror of rotateRight
func (tree *Tree) rotateLeft(x *Node) *Node {
	y := x.right
	t2 := y.left

	tree.replaceChild(x.up, x, y)
	x.setRight(t2)
	y.setLeft(x)

	x.updateHeight()
	y.updateHeight()
	return y
}
