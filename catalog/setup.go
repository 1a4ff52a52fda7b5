// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/coursemark/coursemarkd/fault"
	"github.com/coursemark/coursemarkd/storage"
)

// the counter of courses ever created lives under this key
var courseCounterKey = []byte("courses")

// globals
type globalDataType struct {
	sync.Mutex // serialises all catalogue mutations
	log         *logger.L
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - setup the catalogue service
//
// storage must be initialised first
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if !storage.IsInitialised() {
		return fault.NotInitialised
	}

	globalData.log = logger.New("catalog")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop the catalogue service
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}
