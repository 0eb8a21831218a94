// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/stress"
)

func TestRun(t *testing.T) {
	options := stress.Options{
		Trials:        6,
		Workers:       3,
		Keys:          2000,
		Deletes:       1500,
		CheckInterval: 250,
		Seed:          42,
	}

	report, err := stress.Run(options, nil, logger.New("stress"))
	if nil != err {
		t.Fatalf("run error: %s", err)
	}

	assert.False(t, report.Interrupted, "interrupted")
	assert.Equal(t, options, report.Options, "options")
	assert.Equal(t, 6, len(report.Trials), "trials")
	assert.Equal(t, 6, report.Totals.Trials, "total trials")
	assert.Equal(t, 0, report.Totals.Violations, "violations")

	ops := uint64(0)
	for i, trial := range report.Trials {
		assert.Equal(t, i, trial.Trial, "trial order")
		assert.Equal(t, int64(42+i), trial.Seed, "seed")
		assert.Empty(t, trial.Violations, "trial: %d", i)
		assert.Equal(t, options.Keys, trial.Inserted+trial.Updated, "puts")
		assert.Equal(t, trial.Inserted-trial.Deleted, trial.Remaining, "remaining")
		assert.True(t, float64(trial.MaxHeight) <= trial.Bound, "height: %d  bound: %f", trial.MaxHeight, trial.Bound)
		assert.True(t, trial.Insertions.Sum() > 0, "insert rebalances")
		assert.True(t, trial.Deletions.Sum() > 0, "delete rebalances")
		ops += trial.Operations
	}
	assert.Equal(t, ops, report.Totals.Operations, "total operations")
}

// same seed gives the same trials
func TestDeterministic(t *testing.T) {
	options := stress.Options{
		Trials:        2,
		Workers:       2,
		Keys:          500,
		Deletes:       250,
		CheckInterval: 0,
		Seed:          7,
	}
	log := logger.New("stress")

	r1, err := stress.Run(options, nil, log)
	assert.NoError(t, err)
	r2, err := stress.Run(options, nil, log)
	assert.NoError(t, err)

	assert.Equal(t, r1.Trials, r2.Trials, "trials differ")
	assert.Equal(t, r1.Totals, r2.Totals, "totals differ")
}

func TestInvalidOptions(t *testing.T) {
	log := logger.New("stress")
	good := stress.Options{
		Trials:  1,
		Workers: 1,
		Keys:    10,
		Deletes: 5,
	}

	_, err := stress.New(good, log)
	assert.NoError(t, err, "good")

	_, err = stress.New(good, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "logger")

	for i, modify := range []func(o *stress.Options){
		func(o *stress.Options) { o.Trials = 0 },
		func(o *stress.Options) { o.Workers = 0 },
		func(o *stress.Options) { o.Keys = 0 },
		func(o *stress.Options) { o.Deletes = -1 },
		func(o *stress.Options) { o.Deletes = 11 },
		func(o *stress.Options) { o.CheckInterval = -1 },
	} {
		o := good
		modify(&o)
		_, err := stress.Run(o, nil, log)
		if fault.ErrInvalidTrialParameters != err {
			t.Errorf("%d: options: %+v  error: %v", i, o, err)
		}
	}
}

// a closed shutdown channel prevents any trial starting
func TestShutdown(t *testing.T) {
	options := stress.Options{
		Trials:  100,
		Workers: 1,
		Keys:    10,
	}
	shutdown := make(chan struct{})
	close(shutdown)

	report, err := stress.Run(options, shutdown, logger.New("stress"))
	assert.NoError(t, err)
	assert.True(t, report.Interrupted, "interrupted")
	assert.True(t, len(report.Trials) < options.Trials, "trials: %d", len(report.Trials))
}

type progress struct {
	sync.Mutex
	last  int64
	calls int
}

func (p *progress) Set64(n int64) error {
	p.Lock()
	defer p.Unlock()
	p.last = n
	p.calls += 1
	return nil
}

func TestMonitor(t *testing.T) {
	options := stress.Options{
		Trials:  4,
		Workers: 2,
		Keys:    1000,
		Deletes: 100,
	}
	r, err := stress.New(options, logger.New("stress"))
	if nil != err {
		t.Fatalf("new error: %s", err)
	}
	assert.Equal(t, uint64(4*1100), r.Total(), "total")

	p := &progress{}
	m := r.StartMonitor(p, time.Millisecond)
	report := r.Run(nil)
	m.Stop()

	assert.Equal(t, report.Totals.Operations, r.Operations(), "operations")
	assert.Equal(t, int64(r.Operations()), p.last, "final progress")
	assert.True(t, p.calls >= 1, "calls")
}
