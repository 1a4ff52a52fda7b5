// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"bytes"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/mode"
	"github.com/coursemark/coursemarkd/storage"
)

// lectures are stored under their course so two courses may
// independently hold lectures that hash identically
func lectureKey(courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier) []byte {
	key := make([]byte, 0, 2*catalogrecord.IdentifierLength)
	key = append(key, courseId[:]...)
	key = append(key, lectureId[:]...)
	return key
}

// gate an operation on current course ownership
func checkCourseOwner(trx storage.Transaction, courseId catalogrecord.Identifier, signer *account.Account) error {
	packed := trx.Get(storage.Pool.Courses, courseId[:])
	if nil == packed {
		return fault.CourseNotFound
	}
	course, err := catalogrecord.UnpackCourse(packed)
	if nil != err {
		return err
	}
	if !bytes.Equal(course.Owner.Bytes(), signer.Bytes()) {
		return fault.NotCourseOwner
	}
	return nil
}

// CreateLecture - store a new lecture record under a course
//
// only the owner of the course may add lectures to it; like courses,
// lectures are content addressed, so creating an identical record
// under the same course again returns the existing identifier
func CreateLecture(courseId catalogrecord.Identifier, lecture *catalogrecord.Lecture) (catalogrecord.Identifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	var lectureId catalogrecord.Identifier

	if nil == lecture || nil == lecture.Owner {
		return lectureId, fault.InvalidOwner
	}
	if lecture.Owner.IsTesting() != mode.IsTesting() {
		return lectureId, fault.WrongNetworkForPublicKey
	}

	packed, err := lecture.Pack()
	if nil != err {
		return lectureId, err
	}
	lectureId = catalogrecord.NewIdentifier(packed)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return lectureId, err
	}

	err = checkCourseOwner(trx, courseId, lecture.Owner)
	if nil != err {
		trx.Abort()
		return lectureId, err
	}

	key := lectureKey(courseId, lectureId)
	if trx.Has(storage.Pool.Lectures, key) {
		trx.Abort()
		return lectureId, nil
	}

	trx.Put(storage.Pool.Lectures, key, packed)

	err = trx.Commit()
	if nil != err {
		return lectureId, err
	}

	globalData.log.Infof("created lecture: %v course: %v", lectureId, courseId)

	return lectureId, nil
}

// RemoveLecture - delete a lecture record from a course
//
// gated on course ownership; removal of an absent lecture is a no-op
func RemoveLecture(courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier, signer *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == signer {
		return fault.InvalidOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = checkCourseOwner(trx, courseId, signer)
	if nil != err {
		trx.Abort()
		return err
	}

	trx.Delete(storage.Pool.Lectures, lectureKey(courseId, lectureId))

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("removed lecture: %v course: %v", lectureId, courseId)

	return nil
}

// LectureExists - check a lecture is stored under a course and
// whether the given account owns the lecture record
func LectureExists(courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier, acc *account.Account) (bool, error) {
	packed := storage.Pool.Lectures.Get(lectureKey(courseId, lectureId))
	if nil == packed {
		return false, fault.LectureNotFound
	}
	if nil == acc {
		return false, nil
	}
	lecture, err := catalogrecord.UnpackLecture(packed)
	if nil != err {
		return false, err
	}
	return bytes.Equal(lecture.Owner.Bytes(), acc.Bytes()), nil
}

// GetLecture - fetch and unpack a stored lecture record
func GetLecture(courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier) (*catalogrecord.Lecture, error) {
	packed := storage.Pool.Lectures.Get(lectureKey(courseId, lectureId))
	if nil == packed {
		return nil, fault.LectureNotFound
	}
	return catalogrecord.UnpackLecture(packed)
}
