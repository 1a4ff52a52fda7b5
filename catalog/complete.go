// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/completion"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/reward"
	"github.com/coursemark/coursemarkd/storage"
)

// CompleteLecture - record a completion and mint its reward
//
// the reward is issued before the completion is recorded, all inside
// one transaction: if minting fails nothing is recorded and the
// caller sees a reward issuance failure. The operation is not
// idempotent, each call mints a fresh class for the completer.
func CompleteLecture(courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier, completer *account.Account) (reward.ClassId, reward.TokenId, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == completer {
		return 0, 0, fault.InvalidOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, 0, err
	}

	if !trx.Has(storage.Pool.Courses, courseId[:]) {
		trx.Abort()
		return 0, 0, fault.CourseNotFound
	}

	classId, tokenId, err := reward.Issue(trx, completer)
	if nil != err {
		trx.Abort()
		globalData.log.Errorf("reward issue failed: %s", err)
		return 0, 0, fault.RewardIssuanceFailed
	}

	completion.MarkComplete(trx, completer, courseId, lectureId)

	err = trx.Commit()
	if nil != err {
		return 0, 0, err
	}

	globalData.log.Infof("completed lecture: %v course: %v class: %d token: %d", lectureId, courseId, classId, tokenId)

	return classId, tokenId, nil
}

// HasCompleted - check if an account completed a lecture of a course
func HasCompleted(acc *account.Account, courseId catalogrecord.Identifier, lectureId catalogrecord.Identifier) bool {
	return completion.HasCompleted(acc, courseId, lectureId)
}
