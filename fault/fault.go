// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - the error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ProcessError("already initialised")
	ArithmeticOverflow       = OverflowError("arithmetic overflow")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	CategoryTooLong          = LengthError("category too long")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	ClassNotFound            = NotFoundError("class not found")
	ContentsTooLong          = LengthError("contents too long")
	CounterOverflow          = OverflowError("course counter overflow")
	CourseNotFound           = NotFoundError("course not found")
	DataInconsistent         = ProcessError("data inconsistent")
	DescriptionTooLong       = LengthError("description too long")
	ExceedMaxCourseOwned     = LengthError("exceed maximum courses owned")
	ImageURLTooLong          = LengthError("image url too long")
	InvalidChain             = InvalidError("invalid chain")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidOwner             = InvalidError("invalid owner")
	InvalidSignature         = InvalidError("invalid signature")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	LectureNotFound          = NotFoundError("lecture not found")
	NameTooLong              = LengthError("name too long")
	NameTooShort             = LengthError("name too short")
	NoAvailableClassId       = OverflowError("no available class id")
	NoAvailableTokenId       = OverflowError("no available token id")
	NotCourseOwner           = AuthorizationError("not course owner")
	NotIdentifier            = InvalidError("not identifier")
	NotInitialised           = ProcessError("not initialised")
	NotPublicKey             = InvalidError("not public key")
	RewardIssuanceFailed     = ProcessError("reward issuance failed")
	TokenNotFound            = NotFoundError("token not found")
	TransactionAlreadyInUse  = ProcessError("transaction already in use")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e OverflowError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool      { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
