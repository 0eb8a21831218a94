// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Shape - the arrangement of the nodes below an unbalanced node,
// named by the path from that node toward the taller sub-tree
type Shape int

// the numeric values are the restructuring case numbers
const (
	LeftLeft   Shape = 1 // single rotation right
	LeftRight  Shape = 2 // double rotation
	RightRight Shape = 3 // single rotation left
	RightLeft  Shape = 4 // double rotation
)

// Case - the restructuring case number
func (s Shape) Case() int {
	return int(s)
}

// String - printable name of a shape
func (s Shape) String() string {
	switch s {
	case LeftLeft:
		return "left-left"
	case LeftRight:
		return "left-right"
	case RightRight:
		return "right-right"
	case RightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// Operation - the kind of mutation that caused a rebalance
type Operation int

const (
	Inserting Operation = iota
	Deleting  Operation = iota
)

// String - printable name of an operation
func (op Operation) String() string {
	switch op {
	case Inserting:
		return "insertion"
	case Deleting:
		return "deletion"
	default:
		return "unknown"
	}
}

// Event - details of a single rebalance
type Event struct {
	Operation Operation // insert or delete
	Key       string    // key of the node where balance was violated
	Shape     Shape     // which restructure was applied
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Observer - receives notification around each rebalance
//
// Unbalanced is called with all heights current but balance violated
// at event.Key, Rebalanced after the rotation is complete.  Neither
// may modify the tree.
type Observer interface {
	Unbalanced(tree *Tree, event Event)
	Rebalanced(tree *Tree, event Event)
}

func (tree *Tree) notifyUnbalanced(event Event) {
	if nil != tree.observer {
		tree.observer.Unbalanced(tree, event)
	}
}

func (tree *Tree) notifyRebalanced(event Event) {
	if nil != tree.observer {
		tree.observer.Rebalanced(tree, event)
	}
}
