// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Signature - the type for a signature
type Signature []byte

// MarshalText - convert a signature to its text form
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	buffer := make([]byte, size)
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - convert a text form back to a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sg := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sg, s)
	if nil != err {
		return err
	}
	*signature = sg[:byteCount]
	return nil
}
