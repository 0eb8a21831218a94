// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printYaml(handle io.Writer, message interface{}) error {

	b, err := yaml.Marshal(message)
	if nil != err {
		return err
	}

	_, err = handle.Write(b)
	return err
}

// select the output format
func printReport(handle io.Writer, format string, message interface{}) error {
	switch format {
	case "json":
		return printJson(handle, message)
	case "yaml", "yml":
		return printYaml(handle, message)
	default:
		return fmt.Errorf("format: %q can only be json/yaml", format)
	}
}
