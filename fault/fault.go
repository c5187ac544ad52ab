// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ExistsError("already initialised")
	AmbiguousCall           = InvalidError("ambiguous call")
	AmountOverflow          = RecordError("amount overflow")
	AmountUnderflow         = RecordError("amount underflow")
	AmountSizeInvalid       = LengthError("amount size is invalid")
	CannotDecodeIdentifier  = InvalidError("cannot decode identifier")
	ConfigFileNotFound      = NotFoundError("config file is not found")
	DecimalsExceeded        = InvalidError("decimals exceeded")
	IdentifierLength        = LengthError("identifier length is invalid")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidIdentifier       = InvalidError("invalid identifier")
	InvalidIPAddress        = InvalidError("invalid IP Address")
	InvalidPortNumber       = InvalidError("invalid port number")
	InvalidStructPointer    = InvalidError("invalid struct pointer")
	MissingParameters       = LengthError("missing parameters")
	NameWrongFormat         = InvalidError("name wrong format")
	NotAvailableInReadOnly  = ProcessError("not available in read only mode")
	NotInitialised          = NotFoundError("not initialised")
	RateLimiting            = ProcessError("rate limiting")
	TickerWrongSymbolFormat = InvalidError("ticker wrong symbol format")
	TokenAlreadyExists      = ExistsError("token already exists")
	TokenNotFound           = NotFoundError("token not found")
	TransactionInUse        = ExistsError("transaction already in use")
	UnknownCommand          = NotFoundError("unknown command")
	UnknownQuery            = NotFoundError("unknown query")
	WrongRecordLength       = LengthError("wrong record length")
)

// InsufficientFundsError - debit exceeding the current balance,
// quantities are decimal strings
type InsufficientFundsError struct {
	Balance  string
	Required string
}

// InsufficientAllowanceError - delegated debit exceeding the granted
// allowance, quantities are decimal strings
type InsufficientAllowanceError struct {
	Allowance string
	Required  string
}

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance: %s  required: %s", e.Balance, e.Required)
}

func (e InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance: allowance: %s  required: %s", e.Allowance, e.Required)
}

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsErrInsufficientFunds - check for a funds failure of any quantity
func IsErrInsufficientFunds(e error) bool {
	_, ok := e.(InsufficientFundsError)
	return ok
}

// IsErrInsufficientAllowance - check for an allowance failure of any quantity
func IsErrInsufficientAllowance(e error) bool {
	_, ok := e.(InsufficientAllowanceError)
	return ok
}
