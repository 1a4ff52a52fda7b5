// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursemark/coursemarkd/chain"
	"github.com/coursemark/coursemarkd/configuration"
)

const configurationTemplate = `
local M = {}

M.data_directory = "."
M.chain = "testing"

M.database = {
    directory = "data",
    name = "catalog",
}

M.logging = {
    size = 1048576,
    count = 10,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "coursemarkd.conf")
	err = ioutil.WriteFile(fileName, []byte(configurationTemplate), 0o600)
	assert.NoError(t, err, "write configuration")

	options, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "parse configuration")

	assert.Equal(t, chain.Testing, options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "data", "catalog"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestGetConfigurationRejectsUnknownChain(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "coursemarkd.conf")
	err = ioutil.WriteFile(fileName, []byte(`return { data_directory = ".", chain = "mainnet" }`), 0o600)
	assert.NoError(t, err, "write configuration")

	_, err = configuration.GetConfiguration(fileName)
	assert.Error(t, err, "unknown chain must fail")
}
