// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - the course catalogue state machine
//
// this ties the record, ownership, completion and reward layers
// together: every operation runs inside a single store-wide
// transaction so either all of its writes become durable or none do
//
// operations are serialised by a package lock; identifiers are
// derived from record content so creating the same course twice
// simply yields the existing identifier
package catalog
