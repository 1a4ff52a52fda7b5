// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"encoding/binary"
	"sync"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/counter"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/storage"
)

// to ensure synchronised issuance updates
var toLock sync.Mutex

// Issue - allocate a new class and mint one token into it, must be
// part of the caller's transaction
//
// all allocator checks run before any write is queued, so a failed
// issuance leaves no partially allocated class/token pair
func Issue(trx storage.Transaction, completer *account.Account) (ClassId, TokenId, error) {

	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	// allocate a new class identifier
	nextClass, _ := trx.GetN(storage.Pool.Counters, classCounterKey)
	newNextClass, ok := counter.NextValue(nextClass)
	if !ok {
		return 0, 0, fault.NoAvailableClassId
	}
	classId := ClassId(nextClass)

	// allocate a token identifier within the class
	nextToken, _ := trx.GetN(storage.Pool.ClassNextToken, classId.Bytes())
	newNextToken, ok := counter.NextValue(nextToken)
	if !ok {
		return 0, 0, fault.NoAvailableTokenId
	}
	tokenId := TokenId(nextToken)

	// the class starts at zero issuance and receives this one
	// token; cannot overflow for a fresh class but must be checked
	issuance, ok := counter.NextValue(0)
	if !ok {
		return 0, 0, fault.ArithmeticOverflow
	}

	ownerBytes := completer.Bytes()

	classValue := make([]byte, uint64ByteSize, uint64ByteSize+len(ownerBytes))
	binary.BigEndian.PutUint64(classValue, issuance)
	classValue = append(classValue, ownerBytes...)

	// queue all of the writes
	trx.PutN(storage.Pool.Counters, classCounterKey, newNextClass)
	trx.Put(storage.Pool.Classes, classId.Bytes(), classValue)
	trx.PutN(storage.Pool.ClassNextToken, classId.Bytes(), newNextToken)
	trx.Put(storage.Pool.Tokens, tokenKey(classId, tokenId), ownerBytes)
	trx.Put(storage.Pool.TokenOwners, tripleKey(ownerBytes, classId, tokenId), []byte{})

	return classId, tokenId, nil
}
