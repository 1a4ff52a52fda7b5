// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reward - the class/token issuance ledger
//
// every completion event allocates a brand-new class and mints exactly
// one token into it for the completer; classes and tokens are never
// removed and identifiers are never reused
//
// from storage/doc.go:
//
//   K ++ class id                      - class record
//                                        data: total issuance ++ owner
//   J ++ class id                      - next token id within the class
//                                        data: count
//   T ++ class id ++ token id          - token record
//                                        data: owner
//   R ++ owner ++ class id ++ token id - token reverse index, presence only
//                                        data: empty
//   G ++ "classes"                     - next class id
//                                        data: count
package reward
