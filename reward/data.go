// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"encoding/binary"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/storage"
)

// ClassId - sequentially allocated class identifier
type ClassId uint64

// TokenId - sequentially allocated token identifier within its class
type TokenId uint64

const (
	uint64ByteSize = 8
)

// the global next-class allocator key
var classCounterKey = []byte("classes")

// Bytes - 8 byte big endian key form
func (classId ClassId) Bytes() []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, uint64(classId))
	return buffer
}

// Bytes - 8 byte big endian key form
func (tokenId TokenId) Bytes() []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, uint64(tokenId))
	return buffer
}

// key of a token record: class id ++ token id
func tokenKey(classId ClassId, tokenId TokenId) []byte {
	return append(classId.Bytes(), tokenId.Bytes()...)
}

// key of a reverse index triple: owner ++ class id ++ token id
func tripleKey(ownerBytes []byte, classId ClassId, tokenId TokenId) []byte {
	key := make([]byte, 0, len(ownerBytes)+2*uint64ByteSize)
	key = append(key, ownerBytes...)
	key = append(key, classId.Bytes()...)
	return append(key, tokenId.Bytes()...)
}

// NextClassId - the value the next allocation will use
//
// always ≥ the number of classes ever allocated
func NextClassId() ClassId {
	n, _ := storage.Pool.Counters.GetN(classCounterKey)
	return ClassId(n)
}

// TotalIssuance - number of tokens ever minted into a class
func TotalIssuance(classId ClassId) (uint64, error) {
	issuance, ownerBytes := storage.Pool.Classes.GetNB(classId.Bytes())
	if nil == ownerBytes {
		return 0, fault.ClassNotFound
	}
	return issuance, nil
}

// ClassOwner - the account a class was created for
func ClassOwner(classId ClassId) (*account.Account, error) {
	_, ownerBytes := storage.Pool.Classes.GetNB(classId.Bytes())
	if nil == ownerBytes {
		return nil, fault.ClassNotFound
	}
	return account.AccountFromBytes(ownerBytes)
}

// TokenOwner - the account a token was minted for
func TokenOwner(classId ClassId, tokenId TokenId) (*account.Account, error) {
	ownerBytes := storage.Pool.Tokens.Get(tokenKey(classId, tokenId))
	if nil == ownerBytes {
		return nil, fault.TokenNotFound
	}
	return account.AccountFromBytes(ownerBytes)
}

// IsTokenOwner - check the reverse index triple
func IsTokenOwner(owner *account.Account, classId ClassId, tokenId TokenId) bool {
	return storage.Pool.TokenOwners.Has(tripleKey(owner.Bytes(), classId, tokenId))
}
