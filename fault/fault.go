// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBalanceViolation       = ProcessError("subtree heights differ by more than one")
	ErrConfigurationExists    = ExistsError("configuration file already exists")
	ErrCountMismatch          = ProcessError("node count does not match tree")
	ErrHeightMismatch         = ProcessError("cached height does not match subtrees")
	ErrInvalidCodeTable       = InvalidError("invalid operation code table")
	ErrInvalidDataDirectory   = InvalidError("invalid data directory")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidOperationCode   = InvalidError("invalid operation code")
	ErrInvalidOperationCount  = InvalidError("invalid operation count")
	ErrInvalidRenderStyle     = InvalidError("invalid render style")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTrialParameters = InvalidError("invalid trial parameters")
	ErrInvalidValue           = InvalidError("invalid value")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrNotAPlainFileName      = InvalidError("not a plain file name")
	ErrOrderViolation         = ProcessError("keys are out of order")
	ErrParentMismatch         = ProcessError("parent link does not match structure")
	ErrRoundTripMismatch      = ProcessError("stored value does not match retrieved value")
	ErrStaleKeyPresent        = ProcessError("deleted key is still present")
	ErrTrialInterrupted       = ProcessError("trial interrupted")
	ErrUnexpectedEndOfInput   = InvalidError("unexpected end of input")
	ErrViolationsFound        = ProcessError("invariant violations found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
