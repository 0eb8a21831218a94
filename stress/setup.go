// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Options - parameters for a run
type Options struct {
	Trials        int   `json:"trials" yaml:"trials"`
	Workers       int   `json:"workers" yaml:"workers"`
	Keys          int   `json:"keys" yaml:"keys"`
	Deletes       int   `json:"deletes" yaml:"deletes"`
	CheckInterval int   `json:"check_interval" yaml:"check_interval"`
	Seed          int64 `json:"seed" yaml:"seed"`
}

// Rebalances - number of rebalances of each shape
type Rebalances struct {
	LeftLeft   uint64 `json:"left_left" yaml:"left_left"`
	LeftRight  uint64 `json:"left_right" yaml:"left_right"`
	RightRight uint64 `json:"right_right" yaml:"right_right"`
	RightLeft  uint64 `json:"right_left" yaml:"right_left"`
}

// TrialResult - outcome of a single trial
type TrialResult struct {
	Trial      int        `json:"trial" yaml:"trial"`
	Seed       int64      `json:"seed" yaml:"seed"`
	Operations uint64     `json:"operations" yaml:"operations"`
	Inserted   int        `json:"inserted" yaml:"inserted"`
	Updated    int        `json:"updated" yaml:"updated"`
	Deleted    int        `json:"deleted" yaml:"deleted"`
	Remaining  int        `json:"remaining" yaml:"remaining"`
	MaxHeight  int        `json:"max_height" yaml:"max_height"`
	Bound      float64    `json:"bound" yaml:"bound"`
	Insertions Rebalances `json:"insertions" yaml:"insertions"`
	Deletions  Rebalances `json:"deletions" yaml:"deletions"`
	Violations []string   `json:"violations" yaml:"violations"`
}

// Totals - sums over all completed trials
type Totals struct {
	Trials     int        `json:"trials" yaml:"trials"`
	Operations uint64     `json:"operations" yaml:"operations"`
	MaxHeight  int        `json:"max_height" yaml:"max_height"`
	Insertions Rebalances `json:"insertions" yaml:"insertions"`
	Deletions  Rebalances `json:"deletions" yaml:"deletions"`
	Violations int        `json:"violations" yaml:"violations"`
}

// Report - result of a run
type Report struct {
	Options     Options       `json:"options" yaml:"options"`
	Interrupted bool          `json:"interrupted" yaml:"interrupted"`
	Elapsed     string        `json:"elapsed" yaml:"elapsed"`
	Trials      []TrialResult `json:"trials" yaml:"trials"`
	Totals      Totals        `json:"totals" yaml:"totals"`
}

// Runner - holds the state shared by the workers of one run
type Runner struct {
	options    Options
	log        *logger.L
	operations counter
}

// New - validate options and create a runner
func New(options Options, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if options.Trials < 1 || options.Workers < 1 || options.Keys < 1 ||
		options.Deletes < 0 || options.Deletes > options.Keys ||
		options.CheckInterval < 0 {
		return nil, fault.ErrInvalidTrialParameters
	}
	if options.Workers > options.Trials {
		options.Workers = options.Trials
	}
	return &Runner{
		options: options,
		log:     log,
	}, nil
}

// Run - create a runner and run it
func Run(options Options, shutdown <-chan struct{}, log *logger.L) (*Report, error) {
	r, err := New(options, log)
	if nil != err {
		return nil, err
	}
	return r.Run(shutdown), nil
}

// Operations - number of tree operations performed so far
func (r *Runner) Operations() uint64 {
	return r.operations.value()
}

// Total - upper limit for Operations
func (r *Runner) Total() uint64 {
	return uint64(r.options.Trials) * uint64(r.options.Keys+r.options.Deletes)
}

// Run - execute all trials, closing shutdown stops the run once the
// trials already started are complete
func (r *Runner) Run(shutdown <-chan struct{}) *Report {

	start := time.Now()
	r.log.Infof("start: %+v", r.options)

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := 0; i < r.options.Trials; i += 1 {
			select {
			case <-shutdown:
				r.log.Warnf("shutdown after: %d trials queued", i)
				return
			case jobs <- i:
			}
		}
	}()

	results := make([]*TrialResult, r.options.Trials)

	var wg sync.WaitGroup
	for w := 0; w < r.options.Workers; w += 1 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range jobs {
				r.log.Debugf("worker: %d  trial: %d", w, i)
				results[i] = r.trial(i)
			}
		}(w)
	}
	wg.Wait()

	report := &Report{
		Options: r.options,
		Trials:  make([]TrialResult, 0, len(results)),
	}
	for _, result := range results {
		if nil == result {
			report.Interrupted = true
			continue
		}
		report.Trials = append(report.Trials, *result)
		report.Totals.add(result)
	}
	report.Elapsed = time.Since(start).String()

	r.log.Infof("finish: trials: %d  operations: %d  violations: %d  elapsed: %s",
		report.Totals.Trials, report.Totals.Operations, report.Totals.Violations, report.Elapsed)
	return report
}

// accumulate a trial
func (t *Totals) add(result *TrialResult) {
	t.Trials += 1
	t.Operations += result.Operations
	if result.MaxHeight > t.MaxHeight {
		t.MaxHeight = result.MaxHeight
	}
	t.Insertions.add(result.Insertions)
	t.Deletions.add(result.Deletions)
	t.Violations += len(result.Violations)
}

func (r *Rebalances) add(other Rebalances) {
	r.LeftLeft += other.LeftLeft
	r.LeftRight += other.LeftRight
	r.RightRight += other.RightRight
	r.RightLeft += other.RightLeft
}

// Sum - total rebalances of all shapes
func (r Rebalances) Sum() uint64 {
	return r.LeftLeft + r.LeftRight + r.RightRight + r.RightLeft
}
