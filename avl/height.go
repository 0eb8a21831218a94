// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"
)

// height of a possibly empty sub-tree
func (p *Node) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height
func (p *Node) balance() int {
	return p.left.getHeight() - p.right.getHeight()
}

// true if children differ in height by more than one
func (p *Node) unbalanced() bool {
	b := p.balance()
	return b > 1 || b < -1
}

// recompute the cached height from the children
func (p *Node) updateHeight() {
	lh := p.left.getHeight()
	rh := p.right.getHeight()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// recompute heights from p up to the root
func updateHeights(p *Node) {
	for ; nil != p; p = p.up {
		p.updateHeight()
	}
}

// HeightBound - the greatest height an AVL tree holding n keys can
// reach: log_phi(sqrt(5) * (n+2)) - 2
//
// this follows from the minimum node count of a tree of height h
// being Fibonacci(h+2) - 1
func HeightBound(n int) float64 {
	if n <= 0 {
		return 0
	}
	phi := (1 + math.Sqrt(5)) / 2
	return math.Log(math.Sqrt(5)*float64(n+2))/math.Log(phi) - 2
}
