// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package completion - the lecture completion ledger
//
// records, per (account, course, lecture), that the account has
// completed the lecture; records are never removed, re-marking the
// same key is a no-op at this level
package completion

import (
	"github.com/bitmark-inc/logger"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/storage"
)

// from storage/doc.go:
//
//   D ++ account ++ course id ++ lecture id - lecture completed by account
//                                             data: packed Completion

// completionKey - the composite ledger key
func completionKey(acc *account.Account, courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier) []byte {
	accountBytes := acc.Bytes()
	key := make([]byte, 0, len(accountBytes)+2*catalogrecord.IdentifierLength)
	key = append(key, accountBytes...)
	key = append(key, courseId[:]...)
	return append(key, lectureId[:]...)
}

// MarkComplete - record a completion, must be part of the caller's transaction
//
// unconditional insert/overwrite: the record for a repeated key is
// identical, so the ledger itself is idempotent
func MarkComplete(trx storage.Transaction, acc *account.Account, courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier) {
	record := catalogrecord.Completion{
		Owner: acc,
	}
	packed, err := record.Pack()
	logger.PanicIfError("completion.MarkComplete", err)

	trx.Put(storage.Pool.Completions, completionKey(acc, courseId, lectureId), packed)
}

// HasCompleted - check whether an account has completed a lecture
func HasCompleted(acc *account.Account, courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier) bool {
	return storage.Pool.Completions.Has(completionKey(acc, courseId, lectureId))
}
