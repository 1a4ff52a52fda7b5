// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursemark/coursemarkd/catalog"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/reward"
	"github.com/coursemark/coursemarkd/storage"
)

func TestCompleteLecture(t *testing.T) {
	setup(t)
	defer teardown(t)

	owner := makeAccount(t)
	student := makeAccount(t)

	courseId, err := catalog.CreateCourse(makeCourse(owner, "go basics"))
	assert.Nil(t, err, "create course error")

	lectureId, err := catalog.CreateLecture(courseId, makeLecture(owner, "introduction"))
	assert.Nil(t, err, "create lecture error")

	classId, tokenId, err := catalog.CompleteLecture(courseId, lectureId, student)
	assert.Nil(t, err, "complete error")

	assert.True(t, catalog.HasCompleted(student, courseId, lectureId), "completion missing")

	issuance, err := reward.TotalIssuance(classId)
	assert.Nil(t, err, "issuance error")
	assert.Equal(t, uint64(1), issuance, "wrong issuance")
	assert.True(t, reward.IsTokenOwner(student, classId, tokenId), "token owner missing")

	// completing again mints a fresh class
	secondClassId, _, err := catalog.CompleteLecture(courseId, lectureId, student)
	assert.Nil(t, err, "second complete error")
	assert.NotEqual(t, classId, secondClassId, "class reused")
	assert.True(t, catalog.HasCompleted(student, courseId, lectureId), "completion missing")
}

func TestCompleteLectureUnknownCourse(t *testing.T) {
	setup(t)
	defer teardown(t)

	student := makeAccount(t)
	unknown := catalogrecord.NewIdentifier([]byte("no such course"))
	lectureId := catalogrecord.NewIdentifier([]byte("no such lecture"))

	_, _, err := catalog.CompleteLecture(unknown, lectureId, student)
	assert.Equal(t, fault.CourseNotFound, err, "wrong error")
	assert.False(t, catalog.HasCompleted(student, unknown, lectureId), "completion recorded")
}

func TestCompleteLectureRewardFailure(t *testing.T) {
	setup(t)
	defer teardown(t)

	owner := makeAccount(t)
	student := makeAccount(t)

	courseId, err := catalog.CreateCourse(makeCourse(owner, "go basics"))
	assert.Nil(t, err, "create course error")

	lectureId, err := catalog.CreateLecture(courseId, makeLecture(owner, "introduction"))
	assert.Nil(t, err, "create lecture error")

	// exhaust the class id space
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	trx.PutN(storage.Pool.Counters, []byte("classes"), math.MaxUint64)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	_, _, err = catalog.CompleteLecture(courseId, lectureId, student)
	assert.Equal(t, fault.RewardIssuanceFailed, err, "wrong error")

	// the failed mint left no completion behind
	assert.False(t, catalog.HasCompleted(student, courseId, lectureId), "completion recorded")
}
