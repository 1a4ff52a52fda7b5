// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/syndtr/goleveldb/leveldb"
)

// a commit whose database write fails must still release the
// transaction, otherwise the store-wide transaction is stuck in use
func TestCommitErrorReleasesTransaction(t *testing.T) {
	const databaseName = "access-test.leveldb"
	os.RemoveAll(databaseName)
	defer os.RemoveAll(databaseName)

	db, err := leveldb.OpenFile(databaseName, nil)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	access := newDA(db, new(leveldb.Batch), newCache())

	if err := access.Begin(); nil != err {
		t.Fatalf("begin error: %s", err)
	}
	access.Put([]byte("key"), []byte("value"))

	// force the write to fail
	db.Close()

	if err := access.Commit(); nil == err {
		t.Fatal("commit on closed database must fail")
	}

	if access.InUse() {
		t.Fatal("transaction still in use after failed commit")
	}
	if err := access.Begin(); nil != err {
		t.Fatalf("begin after failed commit error: %s", err)
	}
	access.Abort()
}
