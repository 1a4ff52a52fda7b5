// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"crypto/rand"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/constants"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/ownership"
	"github.com/coursemark/coursemarkd/storage"
)

const (
	databaseFileName = "ownership-test"
)

func removeFiles() {
	os.RemoveAll(databaseFileName + "-catalog.leveldb")
}

func setup(t *testing.T) {
	removeFiles()
	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
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

func makeCourseId(i int) catalogrecord.Identifier {
	return catalogrecord.NewIdentifier([]byte(fmt.Sprintf("course-%d", i)))
}

// the index appends in order and stops at capacity
func TestCapacityLaw(t *testing.T) {
	setup(t)
	defer teardown(t)

	owner := makeAccount(t)

	for i := 0; i < constants.MaxCourseOwned; i += 1 {
		trx, err := storage.NewDBTransaction()
		assert.Nil(t, err, "transaction error")
		err = ownership.Add(trx, owner, makeCourseId(i))
		assert.Nil(t, err, "add error")
		err = trx.Commit()
		assert.Nil(t, err, "commit error")
	}

	assert.Equal(t, uint64(constants.MaxCourseOwned), ownership.CountFor(owner), "wrong count")

	// one more must be rejected and leave the index unchanged
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	err = ownership.Add(trx, owner, makeCourseId(constants.MaxCourseOwned))
	assert.Equal(t, fault.ExceedMaxCourseOwned, err, "wrong error")
	trx.Abort()

	assert.Equal(t, uint64(constants.MaxCourseOwned), ownership.CountFor(owner), "count changed by rejected add")
}

// insertion order must be preserved in the list
func TestListOrder(t *testing.T) {
	setup(t)
	defer teardown(t)

	owner := makeAccount(t)
	other := makeAccount(t)

	const added = 10
	for i := 0; i < added; i += 1 {
		trx, err := storage.NewDBTransaction()
		assert.Nil(t, err, "transaction error")
		err = ownership.Add(trx, owner, makeCourseId(i))
		assert.Nil(t, err, "add error")
		err = trx.Commit()
		assert.Nil(t, err, "commit error")
	}

	records, err := ownership.ListCoursesFor(owner, 0, added+5)
	assert.Nil(t, err, "list error")
	assert.Equal(t, added, len(records), "wrong record count")
	for i, record := range records {
		assert.Equal(t, uint64(i), record.N, "wrong sequence number")
		assert.Equal(t, makeCourseId(i), record.CourseId, "wrong course id")
	}

	// paging: pick up from the middle
	records, err = ownership.ListCoursesFor(owner, 7, added)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 3, len(records), "wrong record count")
	assert.Equal(t, uint64(7), records[0].N, "wrong first sequence number")

	// an account with no courses lists nothing
	records, err = ownership.ListCoursesFor(other, 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(records), "unexpected records")
	assert.Equal(t, uint64(0), ownership.CountFor(other), "unexpected count")
}
