// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// render styles
const (
	RenderIndent = "indent"
	RenderGraph  = "graph"
	RenderNone   = "none"
)

// separator printed after each rendered tree
const ruleLine = "================================"

// Options - behaviour of a session
type Options struct {
	Prompt          bool   // print the prompts
	Codes           string // code table name
	Render          string // one of the Render* styles
	TraceRebalance  bool   // show trees around each rebalance
	CheckInvariants bool   // verify the tree after every operation
}

// Totals - counts of what a session did
type Totals struct {
	Operations int `json:"operations"`
	Inserts    int `json:"inserts"`
	Updates    int `json:"updates"`
	Deletes    int `json:"deletes"`
	Missing    int `json:"missing"`
	Searches   int `json:"searches"`
	Invalid    int `json:"invalid"`
	Rebalances int `json:"rebalances"`
}

// Session - one pass over an input stream
type Session struct {
	tree    *avl.Tree
	input   *bufio.Scanner
	output  io.Writer
	log     *logger.L
	options Options
	codes   codeTable
	totals  Totals
}

// ValidRenderStyle - true if style is one of the Render* styles
func ValidRenderStyle(style string) bool {
	switch style {
	case RenderIndent, RenderGraph, RenderNone:
		return true
	default:
		return false
	}
}

// New - create a session operating on tree
//
// the session registers itself as the tree's rebalance observer
func New(tree *avl.Tree, input io.Reader, output io.Writer, options Options, log *logger.L) (*Session, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	codes, err := lookupCodeTable(options.Codes)
	if nil != err {
		return nil, err
	}
	if !ValidRenderStyle(options.Render) {
		return nil, fault.ErrInvalidRenderStyle
	}

	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	s := &Session{
		tree:    tree,
		input:   scanner,
		output:  output,
		log:     log,
		options: options,
		codes:   codes,
	}
	tree.SetObserver(s)
	return s, nil
}

// Totals - counts so far
func (s *Session) Totals() Totals {
	return s.totals
}

// Run - read the operation count then process that many operations
func (s *Session) Run() error {

	s.prompt("How many operation you want to perform")
	token, err := s.next()
	if nil != err {
		return err
	}
	n, err := strconv.Atoi(token)
	if nil != err || n < 0 {
		s.log.Errorf("operation count: %q", token)
		return fault.ErrInvalidOperationCount
	}
	s.log.Infof("operations: %d  codes: %s", n, s.options.Codes)

	s.prompt("")
	s.prompt("Enter code as below:")
	for _, e := range s.codes {
		s.prompt(fmt.Sprintf("%d :- %s", e.code, e.description))
	}
	s.prompt("")

	for i := 0; i < n; i += 1 {
		if err := s.step(); nil != err {
			return err
		}
		s.render()
		fmt.Fprintln(s.output, ruleLine)
		fmt.Fprintln(s.output)
		fmt.Fprintln(s.output)

		if s.options.CheckInvariants {
			if err := s.tree.Check(); nil != err {
				s.log.Criticalf("after operation: %d  invariant failed: %s", i+1, err)
				return err
			}
		}
	}

	s.log.Infof("totals: %+v", s.totals)
	return nil
}

// process a single operation
func (s *Session) step() error {
	s.prompt("Enter code:")
	token, err := s.next()
	if nil != err {
		return err
	}
	s.totals.Operations += 1

	code, err := strconv.Atoi(token)
	act, ok := s.codes.action(code)
	if nil != err || !ok {
		s.log.Warnf("invalid code: %q", token)
		s.totals.Invalid += 1
		fmt.Fprintln(s.output, "Invalid sequence of input")
		return nil
	}

	s.prompt("Insert the KEY")
	key, err := s.next()
	if nil != err {
		return err
	}

	switch act {

	case actionInsert:
		s.prompt("Insert the value")
		token, err := s.next()
		if nil != err {
			return err
		}
		value, err := strconv.Atoi(token)
		if nil != err {
			s.log.Warnf("insert: %q  invalid value: %q", key, token)
			s.totals.Invalid += 1
			fmt.Fprintf(s.output, "%s: %q\n", fault.ErrInvalidValue, token)
			return nil
		}
		if s.tree.Put(key, value) {
			s.totals.Inserts += 1
			s.log.Debugf("insert: %q → %d", key, value)
		} else {
			s.totals.Updates += 1
			s.log.Debugf("update: %q → %d", key, value)
		}

	case actionDelete:
		if value, ok := s.tree.Delete(key); ok {
			s.totals.Deletes += 1
			s.log.Debugf("delete: %q was: %d", key, value)
		} else {
			s.totals.Missing += 1
			s.log.Debugf("delete: %q not present", key)
		}

	case actionSearch:
		s.totals.Searches += 1
		value, err := s.tree.Get(key)
		if fault.IsErrNotFound(err) {
			s.log.Debugf("search: %q not present", key)
			fmt.Fprintf(s.output, "Key = %s ==> value: null\n", key)
		} else {
			s.log.Debugf("search: %q found: %d", key, value)
			fmt.Fprintf(s.output, "Key = %s ==> value: %d\n", key, value)
		}
	}
	return nil
}

// fetch the next token
func (s *Session) next() (string, error) {
	if s.input.Scan() {
		return s.input.Text(), nil
	}
	if err := s.input.Err(); nil != err {
		return "", err
	}
	return "", fault.ErrUnexpectedEndOfInput
}

func (s *Session) prompt(message string) {
	if s.options.Prompt {
		fmt.Fprintln(s.output, message)
	}
}

// show the tree in the configured style
func (s *Session) render() {
	switch s.options.Render {
	case RenderIndent:
		if err := s.tree.Fprint(s.output); nil != err {
			s.log.Errorf("render error: %s", err)
		}
	case RenderGraph:
		s.tree.Draw(s.output)
	}
}
