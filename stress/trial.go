// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// state of one trial
type trialState struct {
	runner   *Runner
	tree     *avl.Tree
	recorder *recorder
	result   *TrialResult
	expected map[string]int
}

// run trial number i to completion
func (r *Runner) trial(i int) *TrialResult {

	seed := r.options.Seed + int64(i)
	rng := rand.New(rand.NewSource(seed))

	s := &trialState{
		runner:   r,
		tree:     avl.New(),
		recorder: &recorder{},
		result: &TrialResult{
			Trial:      i,
			Seed:       seed,
			Violations: []string{},
		},
		expected: make(map[string]int),
	}
	s.tree.SetObserver(s.recorder)

	// distinct keys in order of first insertion
	keys := make([]string, 0, r.options.Keys)
	space := 4 * r.options.Keys

	for n := 0; n < r.options.Keys; n += 1 {
		key := fmt.Sprintf("k%09d", rng.Intn(space))
		value := rng.Int()
		if s.tree.Put(key, value) {
			s.result.Inserted += 1
			keys = append(keys, key)
		} else {
			s.result.Updated += 1
		}
		s.expected[key] = value
		s.step()
	}

	for _, key := range keys {
		s.roundTrip(key)
	}

	rng.Shuffle(len(keys), func(a, b int) {
		keys[a], keys[b] = keys[b], keys[a]
	})
	deletes := r.options.Deletes
	if deletes > len(keys) {
		deletes = len(keys)
	}
	for _, key := range keys[:deletes] {
		value, ok := s.tree.Delete(key)
		if !ok || value != s.expected[key] {
			s.violation(fault.ErrRoundTripMismatch, "delete: %q  returned: %d, %v  expected: %d", key, value, ok, s.expected[key])
		}
		delete(s.expected, key)
		if _, err := s.tree.Get(key); !fault.IsErrNotFound(err) {
			s.violation(fault.ErrStaleKeyPresent, "key: %q", key)
		}
		s.result.Deleted += 1
		s.step()
	}

	for _, key := range keys[deletes:] {
		s.roundTrip(key)
	}

	if err := s.tree.Check(); nil != err {
		s.violation(err, "final check")
	}
	if s.tree.Count() != len(s.expected) {
		s.violation(fault.ErrCountMismatch, "count: %d  expected: %d", s.tree.Count(), len(s.expected))
	}
	if 0 != s.recorder.unbalanced {
		s.violation(fault.ErrBalanceViolation, "unbalanced notifications without rebalance: %d", s.recorder.unbalanced)
	}

	s.result.Remaining = s.tree.Count()
	s.result.Insertions = s.recorder.insertions
	s.result.Deletions = s.recorder.deletions
	return s.result
}

// after each mutation: count it, compare the height with the bound
// and periodically check the whole tree
func (s *trialState) step() {
	s.result.Operations += 1
	s.runner.operations.increment()

	h := s.tree.Height()
	bound := avl.HeightBound(s.tree.Count())
	if h > s.result.MaxHeight {
		s.result.MaxHeight = h
		s.result.Bound = bound
	}
	if float64(h) > bound {
		s.violation(fault.ErrBalanceViolation, "height: %d  exceeds bound: %.3f  for: %d keys", h, bound, s.tree.Count())
	}

	interval := uint64(s.runner.options.CheckInterval)
	if 0 != interval && 0 == s.result.Operations%interval {
		if err := s.tree.Check(); nil != err {
			s.violation(err, "after operation: %d", s.result.Operations)
		}
	}
}

func (s *trialState) roundTrip(key string) {
	value, err := s.tree.Get(key)
	if nil != err {
		s.violation(err, "get: %q", key)
	} else if value != s.expected[key] {
		s.violation(fault.ErrRoundTripMismatch, "get: %q  returned: %d  expected: %d", key, value, s.expected[key])
	}
}

func (s *trialState) violation(err error, format string, arguments ...interface{}) {
	message := fmt.Sprintf("%s: %s", err, fmt.Sprintf(format, arguments...))
	s.runner.log.Errorf("trial: %d  %s", s.result.Trial, message)
	s.result.Violations = append(s.result.Violations, message)
}
