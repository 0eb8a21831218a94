// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// DataDirectory - resolve the data directory setting of a
// configuration file
//
// "." is the directory holding the configuration file, blank and "~"
// are rejected and the result must be an existing directory
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}
	configurationDirectory, _ := filepath.Split(configurationFileName)

	switch dataDirectory {
	case "", "~":
		return "", fault.ErrInvalidDataDirectory
	case ".":
		dataDirectory = configurationDirectory
	default:
		dataDirectory = EnsureAbsolute(configurationDirectory, dataDirectory)
	}
	dataDirectory = filepath.Clean(dataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(dataDirectory); nil != err {
		return "", err
	} else if !fileInfo.IsDir() {
		return "", fault.ErrInvalidDataDirectory
	}
	return dataDirectory, nil
}

// PlainFileName - fail if name contains a directory part, otherwise
// return it joined to directory
func PlainFileName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fault.ErrNotAPlainFileName
	}
}
