// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	observer Observer
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:     nil,
		count:    0,
		observer: nil,
	}
}

// SetObserver - register a receiver for rebalance events, nil to remove
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.root.getHeight()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []string {
	keys := make([]string, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// Key - read the key from a node item
func (p *Node) Key() string {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() int {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Balance - left height minus right height
func (p *Node) Balance() int {
	return p.balance()
}

// Left - return left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
