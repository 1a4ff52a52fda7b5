// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"bytes"
	"encoding/binary"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/storage"
)

// TokenRecord - one entry of an owner's token list
type TokenRecord struct {
	ClassId ClassId `json:"classId,string"`
	TokenId TokenId `json:"tokenId,string"`
}

// ListTokensFor - fetch the tokens held by an owner
//
// scans the reverse index: owner ++ class id ++ token id
func ListTokensFor(owner *account.Account, count int) ([]TokenRecord, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	ownerBytes := owner.Bytes()

	cursor := storage.Pool.TokenOwners.NewFetchCursor().Seek(ownerBytes)

	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]TokenRecord, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - 2*uint64ByteSize
		if split <= 0 {
			return nil, fault.DataInconsistent
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		record := TokenRecord{
			ClassId: ClassId(binary.BigEndian.Uint64(item.Key[split : split+uint64ByteSize])),
			TokenId: TokenId(binary.BigEndian.Uint64(item.Key[split+uint64ByteSize:])),
		}
		records = append(records, record)
	}

	return records, nil
}
