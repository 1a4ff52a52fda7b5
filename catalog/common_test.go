// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog_test

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalog"
	"github.com/coursemark/coursemarkd/chain"
	"github.com/coursemark/coursemarkd/messagebus"
	"github.com/coursemark/coursemarkd/mode"
	"github.com/coursemark/coursemarkd/storage"
)

const (
	databaseFileName = "catalog-test"
	logDirectory     = "log-test"
)

// common test setup routines

func removeFiles() {
	os.RemoveAll(databaseFileName + "-catalog.leveldb")
	os.RemoveAll(logDirectory)
}

func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	if err := mode.Initialise(chain.Testing); nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	if err := catalog.Initialise(); nil != err {
		t.Fatalf("catalog initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	catalog.Finalise()
	storage.Finalise()
	mode.Finalise()
	logger.Finalise()
	removeFiles()
}

func makeAccount(t *testing.T) *account.Account {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

// drain pending events so each test observes only its own
func drainEvents() {
	for {
		select {
		case <-messagebus.Chan():
		default:
			return
		}
	}
}
