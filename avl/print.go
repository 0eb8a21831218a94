// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// indent for each level of the tree in Render
const levelIndent = "               "

// Render - the tree as text, one node per line with the right-most
// node first and each level indented by a fixed amount
//
// a node is shown as [key,value](h=height) followed by * if its
// children differ in height by more than one
func (tree *Tree) Render() string {
	var b strings.Builder
	_ = tree.Fprint(&b)
	return b.String()
}

// Fprint - write the Render form of the tree to w
func (tree *Tree) Fprint(w io.Writer) error {
	return fprintTree(w, tree.root, 0)
}

func fprintTree(w io.Writer, p *Node, depth int) error {
	if nil == p {
		return nil
	}
	if err := fprintTree(w, p.right, depth+1); nil != err {
		return err
	}
	mark := ""
	if p.unbalanced() {
		mark = "*"
	}
	_, err := fmt.Fprintf(w, "%s[%s,%d](h=%d)%s\n", strings.Repeat(levelIndent, depth), p.key, p.value, p.height, mark)
	if nil != err {
		return err
	}
	return fprintTree(w, p.left, depth+1)
}

// to control the draw routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Draw - display an ASCII graphic representation of the tree
// returns the depth of the tree
func (tree *Tree) Draw(w io.Writer) int {
	return drawTree(w, tree.root, "", root)
}

// internal draw - returns the maximum depth of the tree
func drawTree(w io.Writer, tree *Node, prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = drawTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%q → %d h=%d %+d ^%v\n", tree.key, tree.value, tree.height, tree.balance(), keyOf(tree.up))
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = drawTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
