// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "exercise and measure the AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: filepath.Join(os.TempDir(), "avl-cli"),
			Usage: " write log files to `DIR`",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: " default log `LEVEL` [trace|debug|info|warn|error|critical]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "stress",
			Usage:     "run randomised trials checking invariants and the height bound",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "trials, t",
					Value: 8,
					Usage: " number of independent `TRIALS`",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: runtime.NumCPU(),
					Usage: " run trials on `N` workers",
				},
				cli.IntFlag{
					Name:  "keys, k",
					Value: 10000,
					Usage: " insert `N` random keys per trial",
				},
				cli.IntFlag{
					Name:  "deletes, d",
					Value: 5000,
					Usage: " delete `N` of the inserted keys per trial",
				},
				cli.IntFlag{
					Name:  "check-interval, c",
					Value: 1000,
					Usage: " verify the whole tree every `N` operations, 0 for only at the end",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED` for the first trial",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "json",
					Usage: " report `FORMAT` [json|yaml]",
				},
				cli.BoolFlag{
					Name:  "progress, p",
					Usage: " show a progress bar",
				},
			},
			Action: runStress,
		},
		{
			Name:      "bound",
			Usage:     "show the greatest possible height for each key count",
			ArgsUsage: "N...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "format, f",
					Value: "json",
					Usage: " report `FORMAT` [json|yaml]",
				},
			},
			Action: runBound,
		},
		{
			Name:      "version",
			Usage:     "display avl-cli version",
			ArgsUsage: "\n   (* = required)",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		directory := c.GlobalString("log-directory")
		if err := os.MkdirAll(directory, 0700); nil != err {
			return err
		}

		logging := logger.Configuration{
			Directory: directory,
			File:      "avl-cli.log",
			Size:      1024 * 1024,
			Count:     10,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: c.GlobalString("log-level"),
			},
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			verbose: verbose,
			log:     logger.New("main"),
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
