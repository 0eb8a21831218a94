// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"fmt"

	"github.com/bitmark-inc/avltree/avl"
)

const (
	starLine = "********************************************"
	dashLine = "-------------------------------------------"
)

// Unbalanced - show the tree before it is repaired
func (s *Session) Unbalanced(tree *avl.Tree, event avl.Event) {
	s.log.Infof("%s of: %q unbalanced: %s", event.Operation, event.Key, event.Shape)
	if !s.options.TraceRebalance {
		return
	}
	fmt.Fprintln(s.output, starLine)
	fmt.Fprintf(s.output, "Unbalanced AVL tree after %s !!!\n", event.Operation)
	fmt.Fprintln(s.output, starLine)
	fmt.Fprintln(s.output, "Tree before rebalance:")
	fmt.Fprintln(s.output)
	s.render()
	fmt.Fprintln(s.output, ruleLine)
	fmt.Fprintln(s.output, dashLine)
}

// Rebalanced - show the restructure used and the resulting tree
func (s *Session) Rebalanced(tree *avl.Tree, event avl.Event) {
	s.totals.Rebalances += 1
	if !s.options.TraceRebalance {
		return
	}
	fmt.Fprintf(s.output, "Use tri-node restructuring op #%d\n", event.Shape.Case())
	fmt.Fprintln(s.output, "Tree after rebalance:")
	fmt.Fprintln(s.output)
	s.render()
	fmt.Fprintln(s.output, ruleLine)
	fmt.Fprintln(s.output, starLine)
}
