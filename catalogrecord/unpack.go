// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalogrecord

import (
	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/fault"
)

// read one length-prefixed field from a buffer
// returns the field and the number of bytes consumed
func nextField(buffer []byte) ([]byte, int, error) {
	fieldLength, fieldLengthLength := fromVarint64(buffer)
	if 0 == fieldLengthLength {
		return nil, 0, fault.DataInconsistent
	}
	start := fieldLengthLength
	finish := start + int(fieldLength)
	if finish > len(buffer) {
		return nil, 0, fault.DataInconsistent
	}
	return buffer[start:finish], finish, nil
}

// read a length-prefixed account from a buffer
func nextAccount(buffer []byte) (*account.Account, int, error) {
	field, used, err := nextField(buffer)
	if nil != err {
		return nil, 0, err
	}
	acc, err := account.AccountFromBytes(field)
	if nil != err {
		return nil, 0, err
	}
	return acc, used, nil
}

// read and verify the leading record tag
func unpackTag(buffer []byte, expected TagType) (int, error) {
	tag, tagLength := fromVarint64(buffer)
	if 0 == tagLength || TagType(tag) != expected {
		return 0, fault.DataInconsistent
	}
	return tagLength, nil
}

// UnpackCourse - unpack a stored course record
func UnpackCourse(packed Packed) (*Course, error) {
	n, err := unpackTag(packed, CourseTag)
	if nil != err {
		return nil, err
	}
	rest := packed[n:]

	name, used, err := nextField(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	owner, used, err := nextAccount(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	imageURL, used, err := nextField(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	category, used, err := nextField(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	description, used, err := nextField(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	if 0 != len(rest) {
		return nil, fault.DataInconsistent
	}

	course := &Course{
		Name:        string(name),
		Owner:       owner,
		ImageURL:    string(imageURL),
		Category:    string(category),
		Description: string(description),
	}
	return course, nil
}

// UnpackLecture - unpack a stored lecture record
func UnpackLecture(packed Packed) (*Lecture, error) {
	n, err := unpackTag(packed, LectureTag)
	if nil != err {
		return nil, err
	}
	rest := packed[n:]

	name, used, err := nextField(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	contents, used, err := nextField(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	owner, used, err := nextAccount(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	if 0 != len(rest) {
		return nil, fault.DataInconsistent
	}

	lecture := &Lecture{
		Name:     string(name),
		Contents: string(contents),
		Owner:    owner,
	}
	return lecture, nil
}

// UnpackCompletion - unpack a stored completion record
func UnpackCompletion(packed Packed) (*Completion, error) {
	n, err := unpackTag(packed, CompletionTag)
	if nil != err {
		return nil, err
	}
	rest := packed[n:]

	owner, used, err := nextAccount(rest)
	if nil != err {
		return nil, err
	}
	rest = rest[used:]

	if 0 != len(rest) {
		return nil, fault.DataInconsistent
	}

	return &Completion{Owner: owner}, nil
}
