// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"sync"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/constants"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/storage"
)

// to ensure synchronised ownership updates
var toLock sync.Mutex

// from storage/doc.go:
//
// Ownership:
//   N ++ owner          - next count value to use for appending to owned courses
//   O ++ owner ++ count - list of owned courses
//                         data: course id

const (
	uint64ByteSize = 8
)

// Add - append a course to an owner's list, must be part of the
// caller's transaction
//
// the count record equals the number of courses currently owned, so
// the capacity check and the append are a single atomic step relative
// to the enclosing course creation
func Add(trx storage.Transaction, owner *account.Account, courseId catalogrecord.Identifier) error {

	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	ownerBytes := owner.Bytes()

	count, _ := trx.GetN(storage.Pool.OwnerNextCount, ownerBytes)
	if count >= constants.MaxCourseOwned {
		return fault.ExceedMaxCourseOwned
	}

	countBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(countBytes, count)

	trx.Put(storage.Pool.OwnerList, append(ownerBytes, countBytes...), courseId[:])
	trx.PutN(storage.Pool.OwnerNextCount, ownerBytes, count+1)

	return nil
}

// CountFor - the number of courses an account currently owns
func CountFor(owner *account.Account) uint64 {
	count, _ := storage.Pool.OwnerNextCount.GetN(owner.Bytes())
	return count
}
