// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalogrecord

import (
	"unicode/utf8"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in a Varint64
const Varint64MaximumBytes = 9

// convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant first, high bit of each byte
// set while more bytes follow; the ninth byte carries a full eight bits
func toVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		result = append(result, byte(value))
		return result
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		result = append(result, byte(value|ext))
		value >>= 7
	}
	return result
}

// convert an array of up to Varint64MaximumBytes to a uint64
//
// also returns the number of bytes used as second value
// returns 0, 0 if the varint64 buffer is truncated
func fromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) {
		currentByte := uint64(buffer[count])
		count += 1
		if count < Varint64MaximumBytes {
			result |= currentByte & 0x7f << shift
			if 0 == currentByte&0x80 {
				return result, count
			}
		} else {
			result |= currentByte << shift
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// append a length-prefixed string to a buffer
func appendString(buffer Packed, s string) Packed {
	stringLength := toVarint64(uint64(len(s)))
	buffer = append(buffer, stringLength...)
	return append(buffer, s...)
}

// append a length-prefixed account to a buffer
func appendAccount(buffer Packed, acc *account.Account) Packed {
	data := acc.Bytes()
	dataLength := toVarint64(uint64(len(data)))
	buffer = append(buffer, dataLength...)
	return append(buffer, data...)
}

// Pack - pack a course record
//
// Varint64(tag) followed by fields in order as the struct above,
// each field length prefixed; the owner is included so identical
// metadata under different owners packs differently
func (course *Course) Pack() (Packed, error) {
	if nil == course.Owner {
		return nil, fault.InvalidOwner
	}
	if utf8.RuneCountInString(course.Name) < minNameLength {
		return nil, fault.NameTooShort
	}
	if utf8.RuneCountInString(course.Name) > maxNameLength {
		return nil, fault.NameTooLong
	}
	if utf8.RuneCountInString(course.ImageURL) > maxImageURLLength {
		return nil, fault.ImageURLTooLong
	}
	if utf8.RuneCountInString(course.Category) > maxCategoryLength {
		return nil, fault.CategoryTooLong
	}
	if utf8.RuneCountInString(course.Description) > maxDescriptionLength {
		return nil, fault.DescriptionTooLong
	}

	// concatenate bytes
	message := Packed(toVarint64(uint64(CourseTag)))
	message = appendString(message, course.Name)
	message = appendAccount(message, course.Owner)
	message = appendString(message, course.ImageURL)
	message = appendString(message, course.Category)
	message = appendString(message, course.Description)
	return message, nil
}

// ID - the content-addressed identifier of a course
//
// only valid on a course that packs successfully
func (course *Course) ID() (Identifier, error) {
	packed, err := course.Pack()
	if nil != err {
		return Identifier{}, err
	}
	return NewIdentifier(packed), nil
}

// Pack - pack a lecture record
//
// Varint64(tag) followed by name, contents and owner
func (lecture *Lecture) Pack() (Packed, error) {
	if nil == lecture.Owner {
		return nil, fault.InvalidOwner
	}
	if utf8.RuneCountInString(lecture.Name) < minNameLength {
		return nil, fault.NameTooShort
	}
	if utf8.RuneCountInString(lecture.Name) > maxNameLength {
		return nil, fault.NameTooLong
	}
	if utf8.RuneCountInString(lecture.Contents) > maxContentsLength {
		return nil, fault.ContentsTooLong
	}

	message := Packed(toVarint64(uint64(LectureTag)))
	message = appendString(message, lecture.Name)
	message = appendString(message, lecture.Contents)
	message = appendAccount(message, lecture.Owner)
	return message, nil
}

// ID - the content-addressed identifier of a lecture
func (lecture *Lecture) ID() (Identifier, error) {
	packed, err := lecture.Pack()
	if nil != err {
		return Identifier{}, err
	}
	return NewIdentifier(packed), nil
}

// Pack - pack a completion record
func (completion *Completion) Pack() (Packed, error) {
	if nil == completion.Owner {
		return nil, fault.InvalidOwner
	}

	message := Packed(toVarint64(uint64(CompletionTag)))
	message = appendAccount(message, completion.Owner)
	return message, nil
}
