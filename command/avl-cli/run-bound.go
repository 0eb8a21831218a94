// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

type boundEntry struct {
	Keys      int     `json:"keys" yaml:"keys"`
	Bound     float64 `json:"bound" yaml:"bound"`
	MaxHeight int     `json:"max_height" yaml:"max_height"`
	MinHeight int     `json:"min_height" yaml:"min_height"`
}

func runBound(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fmt.Errorf("missing key count argument")
	}

	result := make([]boundEntry, 0, len(c.Args()))
	for _, s := range c.Args() {
		n, err := strconv.Atoi(s)
		if nil != err {
			return fmt.Errorf("key count: %q  error: %s", s, err)
		}
		if n < 0 {
			return fmt.Errorf("key count: %d must not be negative", n)
		}
		bound := avl.HeightBound(n)

		// a perfectly balanced tree
		minHeight := 0
		if n > 0 {
			minHeight = int(math.Ceil(math.Log2(float64(n + 1))))
		}
		result = append(result, boundEntry{
			Keys:      n,
			Bound:     bound,
			MaxHeight: int(math.Floor(bound)),
			MinHeight: minHeight,
		})
		m.log.Debugf("keys: %d  bound: %f", n, bound)
	}

	return printReport(m.w, c.String("format"), result)
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}
