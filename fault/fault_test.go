// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/coursemark/coursemarkd/fault"
)

var (
	errAuthOne     = fault.AuthorizationError("auth one")
	errExistsOne   = fault.ExistsError("exists one")
	errInvalidOne  = fault.InvalidError("invalid one")
	errLengthOne   = fault.LengthError("length one")
	errNotFoundOne = fault.NotFoundError("not found one")
	errOverflowOne = fault.OverflowError("overflow one")
	errProcessOne  = fault.ProcessError("process one")
)

// test that the various error classes can be distinguished
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		auth     bool
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		overflow bool
		process  bool
	}{
		{errAuthOne, true, false, false, false, false, false, false},
		{errExistsOne, false, true, false, false, false, false, false},
		{errInvalidOne, false, false, true, false, false, false, false},
		{errLengthOne, false, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, false, true, false, false},
		{errOverflowOne, false, false, false, false, false, true, false},
		{errProcessOne, false, false, false, false, false, false, true},
		{fault.NotCourseOwner, true, false, false, false, false, false, false},
		{fault.ExceedMaxCourseOwned, false, false, false, true, false, false, false},
		{fault.CourseNotFound, false, false, false, false, true, false, false},
		{fault.LectureNotFound, false, false, false, false, true, false, false},
		{fault.CounterOverflow, false, false, false, false, false, true, false},
		{fault.NoAvailableClassId, false, false, false, false, false, true, false},
		{fault.NoAvailableTokenId, false, false, false, false, false, true, false},
		{fault.ArithmeticOverflow, false, false, false, false, false, true, false},
		{fault.RewardIssuanceFailed, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorization(err) != e.auth {
			t.Errorf("%d: expected 'authorization' == %v for err = %v", i, e.auth, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrOverflow(err) != e.overflow {
			t.Errorf("%d: expected 'overflow' == %v for err = %v", i, e.overflow, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// error text must match the constant's message
func TestErrorText(t *testing.T) {
	if "not course owner" != fault.NotCourseOwner.Error() {
		t.Errorf("unexpected error text: %q", fault.NotCourseOwner.Error())
	}
	if "course counter overflow" != fault.CounterOverflow.Error() {
		t.Errorf("unexpected error text: %q", fault.CounterOverflow.Error())
	}
}
