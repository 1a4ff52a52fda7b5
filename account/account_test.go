// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/fault"
)

// create a testnet account with a fresh key pair
func makeAccount(t *testing.T) (*account.Account, ed25519.PrivateKey) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("key generation failed: %s", err)
	}
	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
	return acc, privateKey
}

// test base58 round trip
func TestBase58(t *testing.T) {
	acc, _ := makeAccount(t)

	encoded := acc.String()

	decoded, err := account.AccountFromBase58(encoded)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}

	if !bytes.Equal(acc.Bytes(), decoded.Bytes()) {
		t.Errorf("decoded account: %x expected: %x", decoded.Bytes(), acc.Bytes())
	}
	if !decoded.IsTesting() {
		t.Errorf("testnet flag lost in round trip")
	}
	if account.ED25519 != decoded.KeyType() {
		t.Errorf("key type: %d expected: %d", decoded.KeyType(), account.ED25519)
	}
}

// a corrupted checksum must be detected
func TestChecksum(t *testing.T) {
	acc, _ := makeAccount(t)

	encoded := acc.String()
	corrupted := []byte(encoded)
	if 'z' == corrupted[len(corrupted)-1] {
		corrupted[len(corrupted)-1] = 'x'
	} else {
		corrupted[len(corrupted)-1] = 'z'
	}

	_, err := account.AccountFromBase58(string(corrupted))
	if nil == err {
		t.Fatalf("corrupted account was accepted")
	}
}

// invalid byte forms
func TestInvalidBytes(t *testing.T) {
	testData := []struct {
		buffer   []byte
		expected error
	}{
		{[]byte{}, fault.NotPublicKey},
		{[]byte{0x00}, fault.NotPublicKey}, // missing public key bit
		{[]byte{0xf1, 0x12, 0x34}, fault.InvalidKeyType},
		{[]byte{0x11, 0x12, 0x34}, fault.InvalidKeyLength}, // truncated key
	}

	for i, item := range testData {
		_, err := account.AccountFromBytes(item.buffer)
		if item.expected != err {
			t.Errorf("%d: error: %v expected: %v", i, err, item.expected)
		}
	}
}

// signature check with the matching private key
func TestCheckSignature(t *testing.T) {
	acc, privateKey := makeAccount(t)

	message := []byte("hello course ledger")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Fatalf("valid signature rejected: %s", err)
	}

	if err := acc.CheckSignature([]byte("tampered"), signature); nil == err {
		t.Fatalf("invalid signature accepted")
	}

	if err := acc.CheckSignature(message, signature[:10]); fault.InvalidSignature != err {
		t.Fatalf("truncated signature: error: %v expected: %v", err, fault.InvalidSignature)
	}
}
