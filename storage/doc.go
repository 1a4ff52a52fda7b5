// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a LevelDB database with a single-byte prefix per logical
// pool, all of the catalog state lives in the pools below
//
// Courses:
//
//   C ++ course id                          - course record
//                                             data: packed Course
//   L ++ course id ++ lecture id            - lecture record
//                                             data: packed Lecture
//   D ++ account ++ course id ++ lecture id - lecture completed by account
//                                             data: packed Completion
//
// Ownership:
//
//   N ++ owner                              - next count value to use for appending to owned courses
//                                             data: count
//   O ++ owner ++ count                     - list of owned courses
//                                             data: course id
//
// Reward ledger:
//
//   K ++ class id                           - reward class record
//                                             data: total issuance ++ owner
//   J ++ class id                           - next token id within the class
//                                             data: count
//   T ++ class id ++ token id               - token record
//                                             data: owner
//   R ++ owner ++ class id ++ token id      - token reverse index, presence only
//                                             data: empty
//
// Allocators:
//
//   G ++ name                               - global counters ("courses", "classes")
//                                             data: count
//
// Testing:
//
//   Z ++ key                                - test data
package storage
