// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalogrecord"
	"github.com/coursemark/coursemarkd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - the item queued for the host's event sink
type Message struct {
	From string
	Item interface{}
}

// Created - a new course was successfully created
type Created struct {
	Owner    *account.Account
	CourseId catalogrecord.Identifier
}

// NameSet - a course name was successfully set
type NameSet struct {
	Owner    *account.Account
	CourseId catalogrecord.Identifier
	Name     string
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)

	// messages discarded because the consumer fell behind
	dropCount counter.Counter
)

// Send - queue an item, fire-and-forget
//
// delivery is not guaranteed: when the queue is full the message is
// dropped and counted
func Send(from string, item interface{}) {
	select {
	case queue <- Message{From: from, Item: item}:
	default:
		dropCount.Increment()
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// DropCount - number of messages dropped so far
func DropCount() uint64 {
	return dropCount.Uint64()
}
