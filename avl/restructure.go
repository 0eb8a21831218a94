// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// classify the path x → y → z where y is a child of x and z a child
// of y
func shapeOf(x *Node, y *Node, z *Node) Shape {
	yLeft := y == x.left
	zLeft := z == y.left
	switch {
	case yLeft && zLeft:
		return LeftLeft
	case yLeft:
		return LeftRight
	case zLeft:
		return RightLeft
	default:
		return RightRight
	}
}

// tri-node restructure
//
// the three nodes are renamed a, b, c in key order and their four
// hanging sub-trees T0..T3 likewise; b replaces x and becomes the
// parent of a and c:
//
//          b
//        /   \
//       a     c
//      / \   / \
//     T0 T1 T2 T3
//
// returns b
func (tree *Tree) restructure(x *Node, y *Node, z *Node, shape Shape) *Node {
	var a, b, c *Node
	var t0, t1, t2, t3 *Node

	switch shape {
	case LeftLeft:
		a, b, c = z, y, x
		t0, t1, t2, t3 = z.left, z.right, y.right, x.right
	case LeftRight:
		a, b, c = y, z, x
		t0, t1, t2, t3 = y.left, z.left, z.right, x.right
	case RightRight:
		a, b, c = x, y, z
		t0, t1, t2, t3 = x.left, y.left, z.left, z.right
	case RightLeft:
		a, b, c = x, z, y
		t0, t1, t2, t3 = x.left, z.left, z.right, y.right
	default:
		panic("restructure: invalid shape")
	}

	tree.replaceChild(x.up, x, b)

	a.setLeft(t0)
	a.setRight(t1)
	c.setLeft(t2)
	c.setRight(t3)
	b.setLeft(a)
	b.setRight(c)

	a.updateHeight()
	c.updateHeight()

	// b and then every ancestor, which drop back to the height they
	// had before the insert
	updateHeights(b)

	return b
}
