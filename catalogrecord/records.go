// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalogrecord

import (
	"github.com/coursemark/coursemarkd/account"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded as a Varint64 at the start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	CourseTag     = TagType(iota) // top-level content record
	LectureTag    = TagType(iota) // content sub-record scoped to a course
	CompletionTag = TagType(iota) // fact that an account finished a lecture

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes for various fields
const (
	minNameLength        = 1
	maxNameLength        = 256
	maxCategoryLength    = 64
	maxImageURLLength    = 1024
	maxDescriptionLength = 2048
	maxContentsLength    = 65536
)

// Course - the unpacked course record
//
// the identifier of a course is the hash of this entire record, fixed
// at creation time; a later name update changes the stored record but
// never the identifier
type Course struct {
	Name        string           `json:"name"`        // utf-8
	Owner       *account.Account `json:"owner"`       // base58
	ImageURL    string           `json:"imageUrl"`    // utf-8
	Category    string           `json:"category"`    // utf-8
	Description string           `json:"description"` // utf-8
}

// Lecture - the unpacked lecture record
//
// keyed under its course, so two courses may independently hold
// lectures that hash identically
type Lecture struct {
	Name     string           `json:"name"`     // utf-8
	Contents string           `json:"contents"` // utf-8
	Owner    *account.Account `json:"owner"`    // base58
}

// Completion - the unpacked completion record
//
// presence under (account, course, lecture) is the whole fact; the
// only payload is the completer's identity
type Completion struct {
	Owner *account.Account `json:"owner"` // base58
}
