// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

const (
	defaultConfigurationFilename = "avlshell.conf"
)

// sample configuration written by gen-config
const sampleConfiguration = `-- avlshell.conf  -*- mode: lua -*-

local M = {}

-- "." is the directory holding this file
M.data_directory = "."

-- print the prompts before each item is read
M.prompt = true

-- "canonical": 1 insert, 2 delete, 3 search
-- "insert-search": 1 insert, 2 search
M.codes = "canonical"

-- "indent", "graph" or "none"
M.render = "indent"

-- show the tree before and after every rebalance
M.trace_rebalance = true

-- verify the whole tree after every operation
M.check_invariants = false

-- entries inserted before any input is read
M.preload = {
    -- { key = "apple", value = 1 },
}

M.logging = {
    directory = "log",
    file = "avlshell.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "critical",
        -- main = "info",
        -- shell = "debug",
    },
}

return M
`

// setup command handler
//
// commands that can run without reading the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-config", "gen":
		fileName := defaultConfigurationFilename
		if len(arguments) > 0 && "" != arguments[0] {
			fileName = arguments[0]
		}

		if configuration.EnsureFileExists(fileName) {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, fault.ErrConfigurationExists)
			exitwithstatus.Exit(1)
		}

		if err := os.WriteFile(fileName, []byte(sampleConfiguration), 0600); err != nil {
			_ = os.Remove(fileName)
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--input=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-config [FILE]          (gen)    - create a sample configuration in: %q\n", defaultConfigurationFilename)
		fmt.Printf("                                        or FILE if given\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - read operations from the input, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to the main loop
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}
