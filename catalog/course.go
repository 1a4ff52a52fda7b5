// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"bytes"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/counter"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/messagebus"
	"github.com/coursemark/coursemarkd/mode"
	"github.com/coursemark/coursemarkd/ownership"
	"github.com/coursemark/coursemarkd/storage"
)

// CreateCourse - store a new course record
//
// the identifier is derived from the record content, so a second
// create with identical fields finds the existing record and returns
// its identifier without touching the counter or the ownership index
func CreateCourse(course *catalogrecord.Course) (catalogrecord.Identifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	var courseId catalogrecord.Identifier

	if nil == course || nil == course.Owner {
		return courseId, fault.InvalidOwner
	}
	if course.Owner.IsTesting() != mode.IsTesting() {
		return courseId, fault.WrongNetworkForPublicKey
	}

	packed, err := course.Pack()
	if nil != err {
		return courseId, err
	}
	courseId = catalogrecord.NewIdentifier(packed)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return courseId, err
	}

	// content addressed: an identical record is already this one
	if trx.Has(storage.Pool.Courses, courseId[:]) {
		trx.Abort()
		return courseId, nil
	}

	created, _ := trx.GetN(storage.Pool.Counters, courseCounterKey)
	next, ok := counter.NextValue(created)
	if !ok {
		trx.Abort()
		return courseId, fault.CounterOverflow
	}

	err = ownership.Add(trx, course.Owner, courseId)
	if nil != err {
		trx.Abort()
		return courseId, err
	}

	trx.Put(storage.Pool.Courses, courseId[:], packed)
	trx.PutN(storage.Pool.Counters, courseCounterKey, next)

	err = trx.Commit()
	if nil != err {
		return courseId, err
	}

	globalData.log.Infof("created course: %v owner: %s", courseId, course.Owner)
	messagebus.Send("created", messagebus.Created{
		Owner:    course.Owner,
		CourseId: courseId,
	})

	return courseId, nil
}

// UpdateCourseName - replace the name of an existing course
//
// only the current owner may rename; the identifier is not
// recomputed, the record stays reachable under its original key
func UpdateCourseName(courseId catalogrecord.Identifier, newName string, signer *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == signer {
		return fault.InvalidOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	packed := trx.Get(storage.Pool.Courses, courseId[:])
	if nil == packed {
		trx.Abort()
		return fault.CourseNotFound
	}

	course, err := catalogrecord.UnpackCourse(packed)
	if nil != err {
		trx.Abort()
		return err
	}

	if !bytes.Equal(course.Owner.Bytes(), signer.Bytes()) {
		trx.Abort()
		return fault.NotCourseOwner
	}

	course.Name = newName
	newPacked, err := course.Pack()
	if nil != err {
		trx.Abort()
		return err
	}

	trx.Put(storage.Pool.Courses, courseId[:], newPacked)

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("renamed course: %v name: %q", courseId, newName)
	messagebus.Send("nameSet", messagebus.NameSet{
		Owner:    signer,
		CourseId: courseId,
		Name:     newName,
	})

	return nil
}

// GetCourse - fetch and unpack a stored course record
func GetCourse(courseId catalogrecord.Identifier) (*catalogrecord.Course, error) {
	packed := storage.Pool.Courses.Get(courseId[:])
	if nil == packed {
		return nil, fault.CourseNotFound
	}
	return catalogrecord.UnpackCourse(packed)
}

// IsCourseOwner - check if an account is the current owner of a course
//
// a missing course is an error, distinct from a present course owned
// by somebody else
func IsCourseOwner(courseId catalogrecord.Identifier, acc *account.Account) (bool, error) {
	packed := storage.Pool.Courses.Get(courseId[:])
	if nil == packed {
		return false, fault.CourseNotFound
	}
	course, err := catalogrecord.UnpackCourse(packed)
	if nil != err {
		return false, err
	}
	if nil == acc {
		return false, nil
	}
	return bytes.Equal(course.Owner.Bytes(), acc.Bytes()), nil
}

// CourseCount - total number of courses ever created
func CourseCount() uint64 {
	n, _ := storage.Pool.Counters.GetN(courseCounterKey)
	return n
}
