// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/stress"
)

// interval between progress bar updates
const progressInterval = 200 * time.Millisecond

func runStress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	format := c.String("format")
	switch format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("format: %q can only be json/yaml", format)
	}

	options := stress.Options{
		Trials:        c.Int("trials"),
		Workers:       c.Int("workers"),
		Keys:          c.Int("keys"),
		Deletes:       c.Int("deletes"),
		CheckInterval: c.Int("check-interval"),
		Seed:          c.Int64("seed"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "options: %+v\n", options)
	}

	runner, err := stress.New(options, logger.New("stress"))
	if nil != err {
		return err
	}

	// stop queueing trials on a terminating signal
	shutdown := make(chan struct{})
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		if sig, ok := <-ch; ok {
			m.log.Infof("received signal: %v", sig)
			fmt.Fprintf(m.e, "\nreceived signal: %v\n", sig)
			close(shutdown)
		}
	}()

	bar := progressbar.NewOptions64(
		int64(runner.Total()),
		progressbar.OptionSetWriter(m.e),
		progressbar.OptionSetDescription("operations"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(c.Bool("progress")),
		progressbar.OptionClearOnFinish(),
	)
	monitor := runner.StartMonitor(bar, progressInterval)

	report := runner.Run(shutdown)

	monitor.Stop()
	_ = bar.Finish()

	if err := printReport(m.w, format, report); nil != err {
		return err
	}

	if report.Totals.Violations > 0 {
		m.log.Errorf("violations: %d", report.Totals.Violations)
		return fault.ErrViolationsFound
	}
	if report.Interrupted {
		return fault.ErrTrialInterrupted
	}
	return nil
}
