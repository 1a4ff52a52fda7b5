// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/coursemark/coursemarkd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Courses        *PoolHandle `prefix:"C"`
	Lectures       *PoolHandle `prefix:"L"`
	Completions    *PoolHandle `prefix:"D"`
	OwnerNextCount *PoolHandle `prefix:"N"`
	OwnerList      *PoolHandle `prefix:"O"`
	Classes        *PoolHandle `prefix:"K"`
	ClassNextToken *PoolHandle `prefix:"J"`
	Tokens         *PoolHandle `prefix:"T"`
	TokenOwners    *PoolHandle `prefix:"R"`
	Counters       *PoolHandle `prefix:"G"`
	TestData       *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = uint64(0x100)
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	trx   Transaction
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := leveldb.OpenFile(database+"-catalog.leveldb", nil)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return err
	}
	if version > currentDBVersion {
		db.Close()
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}
	if 0 == version {
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return err
		}
	}

	poolData.db = db
	poolData.batch = new(leveldb.Batch)
	poolData.cache = newCache()
	access := newDA(db, poolData.batch, poolData.cache)
	poolData.trx = newTransaction(access)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to set up its pool handle
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}

	poolData.db.Close()
	poolData.db = nil
	poolData.batch = nil
	poolData.cache = nil
	poolData.trx = nil

	// clear all of the pool handles
	poolValue := reflect.ValueOf(&Pool).Elem()
	nilHandle := reflect.ValueOf((*PoolHandle)(nil))
	for i := 0; i < poolValue.NumField(); i += 1 {
		poolValue.Field(i).Set(nilHandle)
	}
}

// IsInitialised - check the database connection is set up
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}

// NewDBTransaction - begin the store-wide transaction
//
// only one transaction can be in use at a time; every mutation of the
// catalog happens inside one of these and is either committed as a
// whole or aborted leaving the store untouched
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.NotInitialised
	}
	if err := trx.Begin(); nil != err {
		return nil, err
	}
	return trx, nil
}

// read the version record, zero if not present
func getVersion(db *leveldb.DB) (uint64, error) {
	buffer, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	if 8 != len(buffer) {
		return 0, fault.DataInconsistent
	}
	return binary.BigEndian.Uint64(buffer), nil
}

// store the version record
func putVersion(db *leveldb.DB, version uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, version)
	return db.Put(versionKey, buffer, nil)
}
