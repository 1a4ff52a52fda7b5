// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalogrecord_test

import (
	"fmt"
	"testing"

	"github.com/coursemark/coursemarkd/catalogrecord"
)

// identifier derivation must be a pure function
func TestDeterminism(t *testing.T) {
	content := []byte("some record content")

	id1 := catalogrecord.NewIdentifier(content)
	id2 := catalogrecord.NewIdentifier(content)
	if id1 != id2 {
		t.Errorf("identifier not deterministic: %s != %s", id1, id2)
	}

	id3 := catalogrecord.NewIdentifier([]byte("some record content!"))
	if id1 == id3 {
		t.Errorf("different content produced identical identifier: %s", id1)
	}

	empty := catalogrecord.NewIdentifier([]byte{})
	if id1 == empty {
		t.Errorf("empty content collided: %s", empty)
	}
}

// hex text round trip
func TestTextMarshalling(t *testing.T) {
	id := catalogrecord.NewIdentifier([]byte("marshal me"))

	text, err := id.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if len(text) != 2*catalogrecord.IdentifierLength {
		t.Fatalf("marshalled length: %d expected: %d", len(text), 2*catalogrecord.IdentifierLength)
	}

	var back catalogrecord.Identifier
	if err := back.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if id != back {
		t.Errorf("round trip mismatch: %s != %s", id, back)
	}

	var scanned catalogrecord.Identifier
	n, err := fmt.Sscan(id.String(), &scanned)
	if nil != err {
		t.Fatalf("scan error: %s", err)
	}
	if 1 != n {
		t.Fatalf("scan count: %d expected: 1", n)
	}
	if id != scanned {
		t.Errorf("scanned mismatch: %s != %s", scanned, id)
	}
}

// byte slice conversion validates the length
func TestIdentifierFromBytes(t *testing.T) {
	id := catalogrecord.NewIdentifier([]byte("buffer"))

	var back catalogrecord.Identifier
	if err := catalogrecord.IdentifierFromBytes(&back, id[:]); nil != err {
		t.Fatalf("conversion error: %s", err)
	}
	if id != back {
		t.Errorf("conversion mismatch")
	}

	if err := catalogrecord.IdentifierFromBytes(&back, id[:10]); nil == err {
		t.Errorf("short buffer was accepted")
	}
}
