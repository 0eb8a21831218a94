// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // the directory holding the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlshell.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// PreloadType - a key/value pair inserted before any input is read
type PreloadType struct {
	Key   string `gluamapper:"key" json:"key"`
	Value int    `gluamapper:"value" json:"value"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Prompt          bool                 `gluamapper:"prompt" json:"prompt"`
	Codes           string               `gluamapper:"codes" json:"codes"`
	Render          string               `gluamapper:"render" json:"render"`
	TraceRebalance  bool                 `gluamapper:"trace_rebalance" json:"trace_rebalance"`
	CheckInvariants bool                 `gluamapper:"check_invariants" json:"check_invariants"`
	Preload         []PreloadType        `gluamapper:"preload" json:"preload"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// settings used when no file is given or for items the file omits
func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory:   defaultDataDirectory,
		Prompt:          true,
		Codes:           shell.CanonicalCodes,
		Render:          shell.RenderIndent,
		TraceRebalance:  true,
		CheckInvariants: false,
		Preload:         []PreloadType{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	dataDirectory, err := configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	if err := finishConfiguration(options); nil != err {
		return nil, err
	}
	return options, nil
}

// without a configuration file the log goes to a temporary directory
func getDefaultConfiguration() (*Configuration, error) {
	options := defaultConfiguration()
	options.DataDirectory = filepath.Join(os.TempDir(), "avlshell")
	if err := os.MkdirAll(options.DataDirectory, 0700); nil != err {
		return nil, err
	}
	if err := finishConfiguration(options); nil != err {
		return nil, err
	}
	return options, nil
}

// validate the choices and make the log paths absolute
func finishConfiguration(options *Configuration) error {

	if !shell.ValidCodeTable(options.Codes) {
		return fault.ErrInvalidCodeTable
	}
	if !shell.ValidRenderStyle(options.Render) {
		return fault.ErrInvalidRenderStyle
	}

	// the log file must be a plain name, the logger adds the directory
	if _, err := configuration.PlainFileName(options.DataDirectory, options.Logging.File); nil != err {
		return err
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	return os.MkdirAll(options.Logging.Directory, 0700)
}
