// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/tokend/fault"
)

// limits on the decoded identifier
const (
	minimumDecodedLength = 4
	maximumDecodedLength = 64
)

// Identifier - opaque string naming an account
//
// storage keys use the raw string bytes so two identifiers are the
// same account exactly when the strings are equal
type Identifier string

// Validator - host supplied identifier format check
//
// returns fault.InvalidIdentifier (or a more specific instance) for
// a malformed identifier
type Validator func(Identifier) error

// Validate - the default identifier rules
//
// the string must be non-empty Base58 and decode to a byte count
// within the accepted bounds
func Validate(id Identifier) error {
	if "" == id {
		return fault.InvalidIdentifier
	}
	decoded, err := base58.Decode(string(id))
	if nil != err {
		return fault.CannotDecodeIdentifier
	}
	n := len(decoded)
	if n < minimumDecodedLength || n > maximumDecodedLength {
		return fault.IdentifierLength
	}
	return nil
}

// Bytes - the storage key form of an identifier
func (id Identifier) Bytes() []byte {
	return []byte(id)
}

// String - for printf
func (id Identifier) String() string {
	return string(id)
}
