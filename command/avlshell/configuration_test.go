// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
)

func writeConfiguration(t *testing.T, text string) (string, string) {
	directory := t.TempDir()
	fileName := filepath.Join(directory, "avlshell.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return directory, fileName
}

// the generated sample must be usable as it stands
func TestSampleConfiguration(t *testing.T) {
	directory, fileName := writeConfiguration(t, sampleConfiguration)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, filepath.Clean(directory), c.DataDirectory, "data directory")
	assert.True(t, c.Prompt, "prompt")
	assert.Equal(t, shell.CanonicalCodes, c.Codes, "codes")
	assert.Equal(t, shell.RenderIndent, c.Render, "render")
	assert.True(t, c.TraceRebalance, "trace")
	assert.False(t, c.CheckInvariants, "check")
	assert.Empty(t, c.Preload, "preload")
	assert.Equal(t, filepath.Join(directory, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "avlshell.log", c.Logging.File, "log file")
	assert.Equal(t, 10, c.Logging.Count, "log count")
	assert.Equal(t, "critical", c.Logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(c.Logging.Directory)
	assert.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory")
}

func TestConfigurationOverrides(t *testing.T) {
	text := `
return {
    data_directory = ".",
    prompt = false,
    codes = "insert-search",
    render = "graph",
    check_invariants = true,
    preload = {
        { key = "b", value = 2 },
        { key = "a", value = 1 },
    },
}
`
	_, fileName := writeConfiguration(t, text)

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.False(t, c.Prompt, "prompt")
	assert.Equal(t, shell.InsertSearchCodes, c.Codes, "codes")
	assert.Equal(t, shell.RenderGraph, c.Render, "render")
	assert.True(t, c.TraceRebalance, "default trace")
	assert.True(t, c.CheckInvariants, "check")
	assert.Equal(t, []PreloadType{{"b", 2}, {"a", 1}}, c.Preload, "preload")
	assert.Equal(t, defaultLogFile, c.Logging.File, "default log file")
}

func TestConfigurationEmpty(t *testing.T) {
	directory, fileName := writeConfiguration(t, "return { }")

	c, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.Equal(t, filepath.Clean(directory), c.DataDirectory, "default data directory")
	assert.Equal(t, shell.CanonicalCodes, c.Codes, "default codes")
	assert.Equal(t, defaultLogSize, c.Logging.Size, "default log size")
}

func TestConfigurationErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{`return { data_directory = "." , codes = "other" }`, fault.ErrInvalidCodeTable},
		{`return { data_directory = "." , render = "fancy" }`, fault.ErrInvalidRenderStyle},
		{`return { data_directory = "" }`, fault.ErrInvalidDataDirectory},
		{`return { data_directory = "~" }`, fault.ErrInvalidDataDirectory},
		{`return { data_directory = ".", logging = { file = "a/b.log" } }`, fault.ErrNotAPlainFileName},
	}

	for i, item := range items {
		_, fileName := writeConfiguration(t, item.text)
		_, err := getConfiguration(fileName)
		if item.err != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, item.err)
		}
	}
}
