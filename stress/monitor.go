// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"time"
)

// Progress - receives the running operation count
type Progress interface {
	Set64(int64) error
}

// Monitor - background routine copying the operation count of a
// runner to a progress display
type Monitor struct {
	shutdown chan struct{}
	finished chan struct{}
}

// StartMonitor - start updating progress every interval
func (r *Runner) StartMonitor(progress Progress, interval time.Duration) *Monitor {
	m := &Monitor{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
	}
	go m.run(r, progress, interval)
	return m
}

// Stop - stop the monitor after a final update
func (m *Monitor) Stop() {
	close(m.shutdown)
	<-m.finished
}

func (m *Monitor) run(r *Runner, progress Progress, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	update := func() {
		if err := progress.Set64(int64(r.Operations())); nil != err {
			r.log.Warnf("progress error: %s", err)
		}
	}

loop:
	for {
		select {
		case <-m.shutdown:
			break loop
		case <-ticker.C:
			update()
		}
	}
	update()
	close(m.finished)
}
