// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalogrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/coursemark/coursemarkd/fault"
)

// limits
const (
	IdentifierLength = 64
)

// Identifier - the type for a course or lecture identifier
//
// derived from the record's full packed content, so identical content
// always yields the same identifier and the owner field keeps records
// with identical metadata apart
type Identifier [IdentifierLength]byte

// NewIdentifier - create an identifier from a content byte slice
//
// SHA3-512 Hash
func NewIdentifier(record []byte) Identifier {
	return Identifier(sha3.Sum512(record))
}

// String - convert a binary identifier to hex string for use by the fmt package (for %s)
func (identifier Identifier) String() string {
	return hex.EncodeToString(identifier[:])
}

// GoString - convert a binary identifier to hex string for use by the fmt package (for %#v)
func (identifier Identifier) GoString() string {
	return "<identifier:" + hex.EncodeToString(identifier[:]) + ">"
}

// Scan - convert a hex text representation to an identifier for use by the format package scan routines
func (identifier *Identifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(IdentifierLength) {
		return fault.NotIdentifier
	}

	byteCount, err := hex.Decode(identifier[:], token)
	if nil != err {
		return err
	}

	if IdentifierLength != byteCount {
		return fault.NotIdentifier
	}
	return nil
}

// MarshalText - convert identifier to hex text
func (identifier Identifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(identifier))
	buffer := make([]byte, size)
	hex.Encode(buffer, identifier[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (identifier *Identifier) UnmarshalText(s []byte) error {
	if len(identifier) != hex.DecodedLen(len(s)) {
		return fault.NotIdentifier
	}
	byteCount, err := hex.Decode(identifier[:], s)
	if nil != err {
		return err
	}
	if IdentifierLength != byteCount {
		return fault.NotIdentifier
	}
	return nil
}

// IdentifierFromBytes - convert and validate a binary byte slice to an identifier
func IdentifierFromBytes(identifier *Identifier, buffer []byte) error {
	if IdentifierLength != len(buffer) {
		return fault.NotIdentifier
	}
	copy(identifier[:], buffer)
	return nil
}
