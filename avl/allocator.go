// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type Node struct {
	left   *Node  // left sub-tree
	right  *Node  // right sub-tree
	up     *Node  // points to parent node
	key    string // key part for ordering
	value  int    // value part for data storage
	height int    // 1 for a leaf
}

// allocate a new leaf node
func newNode(key string, value int, up *Node) *Node {
	return &Node{
		up:     up,
		key:    key,
		value:  value,
		height: 1,
	}
}

// clear all links of a removed node so that it holds no other nodes
// alive and can be collected
func freeNode(node *Node) {
	node.left = nil
	node.right = nil
	node.up = nil
	node.key = ""
	node.value = 0
	node.height = 0
}
