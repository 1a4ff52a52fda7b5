// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/storage"
)

// Record - one entry of an owner's course list
type Record struct {
	N        uint64                   `json:"n,string"`
	CourseId catalogrecord.Identifier `json:"courseId"`
}

// ListCoursesFor - fetch a list of courses for an owner
//
// insertion order is preserved: entries come back in the order the
// courses were created by this owner
func ListCoursesFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()
	prefix := append(ownerBytes, startBytes...)

	cursor := storage.Pool.OwnerList.NewFetchCursor().Seek(prefix)

	// owner ++ count → course id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			return nil, fault.DataInconsistent
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		record := Record{
			N: binary.BigEndian.Uint64(item.Key[split:]),
		}
		if err := catalogrecord.IdentifierFromBytes(&record.CourseId, item.Value); nil != err {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
