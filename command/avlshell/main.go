// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "input", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'i'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	// read options and parse the configuration file, if any
	var theConfiguration *Configuration
	switch len(options["config-file"]) {
	case 0:
		theConfiguration, err = getDefaultConfiguration()
		if nil != err {
			exitwithstatus.Message("%s: failed to setup default configuration error: %s", program, err)
		}
	case 1:
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if len(options["quiet"]) > 0 {
		theConfiguration.Prompt = false
		theConfiguration.TraceRebalance = false
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var input io.Reader = os.Stdin
	if 1 == len(options["input"]) {
		fileName := options["input"][0]
		f, err := os.Open(fileName)
		if nil != err {
			log.Criticalf("open input: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: open input: %q  error: %s", program, fileName, err)
		}
		defer f.Close()
		input = f
		log.Infof("input: %q", fileName)
	}

	tree := avl.New()
	for _, p := range theConfiguration.Preload {
		tree.Put(p.Key, p.Value)
		log.Debugf("preload: %q → %d", p.Key, p.Value)
	}
	log.Infof("preloaded: %d keys", tree.Count())

	sessionOptions := shell.Options{
		Prompt:          theConfiguration.Prompt,
		Codes:           theConfiguration.Codes,
		Render:          theConfiguration.Render,
		TraceRebalance:  theConfiguration.TraceRebalance,
		CheckInvariants: theConfiguration.CheckInvariants,
	}
	session, err := shell.New(tree, input, os.Stdout, sessionOptions, logger.New("shell"))
	if nil != err {
		log.Criticalf("shell setup error: %s", err)
		exitwithstatus.Message("%s: shell setup error: %s", program, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Run()
	}()

	// wait for the session or a terminating signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if 0 == len(options["quiet"]) {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
		log.Info("shutting down…")

	case err := <-done:
		log.Infof("totals: %+v", session.Totals())
		if fault.IsErrProcess(err) {
			fault.Criticalf("tree invariant failed: %s", err)
		}
		if nil != err {
			log.Errorf("session error: %s", err)
			exitwithstatus.Message("%s: %s", program, err)
		}
	}
}
