// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalogrecord - record structures for the course catalog
//
// All records are stored in a packed binary form: a Varint64 tag
// followed by length-prefixed fields in struct order.  The packed form
// doubles as the input to identifier derivation, so any change to any
// field, including the owner, produces a different identifier.
package catalogrecord
