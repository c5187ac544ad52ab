// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/tokend/fault"
)

// Size - number of bytes in the fixed width storage encoding
const Size = 16

// maximum number of bits in a quantity
const bitLimit = 8 * Size

// Amount - unsigned token quantity limited to 128 bits
//
// the zero value is a valid zero quantity
type Amount struct {
	value uint256.Int
}

// Zero - a zero quantity
func Zero() Amount {
	return Amount{}
}

// FromUint64 - convert a small number to a quantity
func FromUint64(n uint64) Amount {
	a := Amount{}
	a.value.SetUint64(n)
	return a
}

// FromString - convert a decimal string to a quantity
//
// rejects empty strings, signs, spaces and values over 128 bits
func FromString(s string) (Amount, error) {
	a := Amount{}
	err := a.value.SetFromDecimal(s)
	if nil != err {
		return Zero(), fault.AmountSizeInvalid
	}
	if a.value.BitLen() > bitLimit {
		return Zero(), fault.AmountOverflow
	}
	return a, nil
}

// FromBytes - decode the fixed width big endian storage form
func FromBytes(buffer []byte) (Amount, error) {
	if Size != len(buffer) {
		return Zero(), fault.WrongRecordLength
	}
	a := Amount{}
	a.value.SetBytes(buffer)
	return a, nil
}

// Bytes - the fixed width big endian storage form
func (a Amount) Bytes() []byte {
	b32 := a.value.Bytes32()
	buffer := make([]byte, Size)
	copy(buffer, b32[32-Size:])
	return buffer
}

// Add - checked addition
func (a Amount) Add(b Amount) (Amount, error) {
	sum := Amount{}
	_, overflow := sum.value.AddOverflow(&a.value, &b.value)
	if overflow || sum.value.BitLen() > bitLimit {
		return Zero(), fault.AmountOverflow
	}
	return sum, nil
}

// Sub - checked subtraction
//
// the caller is expected to have already verified sufficiency, so an
// underflow here is an internal error not a user error
func (a Amount) Sub(b Amount) (Amount, error) {
	diff := Amount{}
	_, underflow := diff.value.SubOverflow(&a.value, &b.value)
	if underflow {
		return Zero(), fault.AmountUnderflow
	}
	return diff, nil
}

// Cmp - comparison: -1 if a < b, 0 if equal, +1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(&b.value)
}

// Less - true if a is strictly below b
func (a Amount) Less(b Amount) bool {
	return a.value.Lt(&b.value)
}

// IsZero - true for a zero quantity
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String - decimal representation
func (a Amount) String() string {
	return a.value.Dec()
}

// MarshalText - JSON/text encoding as a decimal string
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.value.Dec()), nil
}

// UnmarshalText - JSON/text decoding from a decimal string
func (a *Amount) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	a.value = parsed.value
	return nil
}
