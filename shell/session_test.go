// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
)

const end = "================================\n\n\n"

func quiet() shell.Options {
	return shell.Options{
		Prompt:          false,
		Codes:           shell.CanonicalCodes,
		Render:          shell.RenderIndent,
		TraceRebalance:  false,
		CheckInvariants: true,
	}
}

// run a session over the input text
func run(t *testing.T, input string, options shell.Options) (*avl.Tree, *shell.Session, string, error) {
	tree := avl.New()
	var output bytes.Buffer
	s, err := shell.New(tree, strings.NewReader(input), &output, options, logger.New("shell"))
	if nil != err {
		t.Fatalf("new session error: %s", err)
	}
	err = s.Run()
	return tree, s, output.String(), err
}

func TestInsertOutput(t *testing.T) {
	tree, s, output, err := run(t, "3 1 10 10 1 20 20 1 30 30", quiet())
	assert.NoError(t, err)

	expected := "[10,10](h=1)\n" + end +
		"               [20,20](h=1)\n" +
		"[10,10](h=2)\n" + end +
		"               [30,30](h=1)\n" +
		"[20,20](h=2)\n" +
		"               [10,10](h=1)\n" + end

	assert.Equal(t, expected, output, "output")
	assert.Equal(t, 3, tree.Count(), "count")

	totals := s.Totals()
	assert.Equal(t, 3, totals.Operations, "operations")
	assert.Equal(t, 3, totals.Inserts, "inserts")
	assert.Equal(t, 1, totals.Rebalances, "rebalances")
}

func TestPrompts(t *testing.T) {
	options := quiet()
	options.Prompt = true
	_, _, output, err := run(t, "1\n3 k", options)
	assert.NoError(t, err)

	expected := "How many operation you want to perform\n" +
		"\n" +
		"Enter code as below:\n" +
		"1 :- insertion\n" +
		"2 :- deletion\n" +
		"3 :- search\n" +
		"\n" +
		"Enter code:\n" +
		"Insert the KEY\n" +
		"Key = k ==> value: null\n" +
		end
	assert.Equal(t, expected, output, "output")
}

func TestInsertPrompts(t *testing.T) {
	options := quiet()
	options.Prompt = true
	_, _, output, err := run(t, "1 1 k 7", options)
	assert.NoError(t, err)
	assert.Contains(t, output, "Enter code:\nInsert the KEY\nInsert the value\n[k,7](h=1)\n")
}

func TestTraceRebalance(t *testing.T) {
	options := quiet()
	options.TraceRebalance = true
	_, _, output, err := run(t, "3 1 10 10 1 20 20 1 30 30", options)
	assert.NoError(t, err)

	expected := "********************************************\n" +
		"Unbalanced AVL tree after insertion !!!\n" +
		"********************************************\n" +
		"Tree before rebalance:\n" +
		"\n" +
		"                              [30,30](h=1)\n" +
		"               [20,20](h=2)\n" +
		"[10,10](h=3)*\n" +
		"================================\n" +
		"-------------------------------------------\n" +
		"Use tri-node restructuring op #3\n" +
		"Tree after rebalance:\n" +
		"\n" +
		"               [30,30](h=1)\n" +
		"[20,20](h=2)\n" +
		"               [10,10](h=1)\n" +
		"================================\n" +
		"********************************************\n"
	assert.Contains(t, output, expected, "trace")
	assert.Equal(t, 1, strings.Count(output, "Unbalanced AVL tree"), "one rebalance")
}

func TestTraceDelete(t *testing.T) {
	options := quiet()
	options.TraceRebalance = true
	_, _, output, err := run(t, "5 1 20 1 1 10 1 1 30 1 1 40 1 2 10", options)
	assert.NoError(t, err)
	assert.Contains(t, output, "Unbalanced AVL tree after deletion !!!")
	assert.Contains(t, output, "Use tri-node restructuring op #3")
}

func TestSearchAndDelete(t *testing.T) {
	input := "6  1 k 5  3 k  1 k 6  3 k  2 k  3 k"
	tree, s, output, err := run(t, input, quiet())
	assert.NoError(t, err)

	assert.Contains(t, output, "Key = k ==> value: 5\n")
	assert.Contains(t, output, "Key = k ==> value: 6\n")
	assert.Contains(t, output, "Key = k ==> value: null\n")
	assert.True(t, tree.IsEmpty(), "empty after delete")

	totals := s.Totals()
	assert.Equal(t, 1, totals.Inserts, "inserts")
	assert.Equal(t, 1, totals.Updates, "updates")
	assert.Equal(t, 1, totals.Deletes, "deletes")
	assert.Equal(t, 3, totals.Searches, "searches")
}

func TestInsertSearchCodes(t *testing.T) {
	options := quiet()
	options.Codes = shell.InsertSearchCodes
	options.Prompt = true
	tree, _, output, err := run(t, "3 1 k 5 2 k 3 k", options)
	assert.NoError(t, err)

	assert.Contains(t, output, "1 :- insertion\n2 :- search\n\n")
	assert.Contains(t, output, "Key = k ==> value: 5\n")
	assert.Contains(t, output, "Invalid sequence of input\n")
	assert.Equal(t, 1, tree.Count(), "count")
}

func TestInvalidInput(t *testing.T) {
	tree, s, output, err := run(t, "4 9 x 1 a b 1 b 2", quiet())
	assert.NoError(t, err)

	// "9" and "x" are both invalid codes
	assert.Equal(t, 2, strings.Count(output, "Invalid sequence of input\n"), "invalid codes")
	assert.Contains(t, output, "invalid value: \"b\"\n")
	assert.Equal(t, []string{"b"}, tree.Keys(), "keys")
	assert.Equal(t, 3, s.Totals().Invalid, "invalid")
}

func TestInputErrors(t *testing.T) {
	items := []struct {
		input string
		err   error
	}{
		{"", fault.ErrUnexpectedEndOfInput},
		{"x", fault.ErrInvalidOperationCount},
		{"-1", fault.ErrInvalidOperationCount},
		{"2 1 k 1", fault.ErrUnexpectedEndOfInput},
		{"1 1 k", fault.ErrUnexpectedEndOfInput},
		{"1 3", fault.ErrUnexpectedEndOfInput},
		{"0", nil},
	}

	for i, item := range items {
		_, _, _, err := run(t, item.input, quiet())
		if item.err != err {
			t.Errorf("%d: input: %q  error: %v  expected: %v", i, item.input, err, item.err)
		}
	}
}

func TestRenderStyles(t *testing.T) {
	options := quiet()
	options.Render = shell.RenderNone
	_, _, output, err := run(t, "2 1 a 1 1 b 2", options)
	assert.NoError(t, err)
	assert.Equal(t, end+end, output, "no render")

	options.Render = shell.RenderGraph
	_, _, output, err = run(t, "1 1 a 1", options)
	assert.NoError(t, err)
	assert.Contains(t, output, "|------+ \"a\" → 1 h=1 +0 ^<nil>\n")
}

func TestNewErrors(t *testing.T) {
	log := logger.New("shell")
	options := quiet()

	_, err := shell.New(avl.New(), strings.NewReader(""), &bytes.Buffer{}, options, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "logger")

	options.Codes = "unknown"
	_, err = shell.New(avl.New(), strings.NewReader(""), &bytes.Buffer{}, options, log)
	assert.Equal(t, fault.ErrInvalidCodeTable, err, "codes")

	options = quiet()
	options.Render = "fancy"
	_, err = shell.New(avl.New(), strings.NewReader(""), &bytes.Buffer{}, options, log)
	assert.Equal(t, fault.ErrInvalidRenderStyle, err, "render")

	assert.True(t, shell.ValidCodeTable(shell.InsertSearchCodes))
	assert.False(t, shell.ValidCodeTable("x"))
}
