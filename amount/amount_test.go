// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
)

// one more than the largest valid quantity
const tooBig = "340282366920938463463374607431768211456" // 2^128

// the largest valid quantity
const maximum = "340282366920938463463374607431768211455" // 2^128 - 1

func TestFromString(t *testing.T) {

	a, err := amount.FromString("12345")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "12345", a.String(), "wrong value")

	a, err = amount.FromString("0")
	assert.Nil(t, err, "parse error")
	assert.True(t, a.IsZero(), "zero not detected")

	a, err = amount.FromString(maximum)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, maximum, a.String(), "wrong value")

	_, err = amount.FromString(tooBig)
	assert.Equal(t, fault.AmountOverflow, err, "128 bit limit not enforced")

	invalid := []string{"", "-1", "+1", " 5", "5 ", "1e3", "0x10", "12a"}
	for _, s := range invalid {
		_, err = amount.FromString(s)
		assert.NotNil(t, err, "accepted invalid string: %q", s)
	}
}

func TestCheckedAdd(t *testing.T) {

	a := amount.FromUint64(100)
	b := amount.FromUint64(50)

	sum, err := a.Add(b)
	assert.Nil(t, err, "add error")
	assert.Equal(t, "150", sum.String(), "wrong sum")

	max, err := amount.FromString(maximum)
	assert.Nil(t, err, "parse error")

	_, err = max.Add(amount.FromUint64(1))
	assert.Equal(t, fault.AmountOverflow, err, "overflow not detected")

	// adding zero to the maximum is still in range
	sum, err = max.Add(amount.Zero())
	assert.Nil(t, err, "add error")
	assert.Equal(t, maximum, sum.String(), "wrong sum")
}

func TestCheckedSub(t *testing.T) {

	a := amount.FromUint64(100)

	diff, err := a.Sub(amount.FromUint64(100))
	assert.Nil(t, err, "sub error")
	assert.True(t, diff.IsZero(), "wrong difference")

	_, err = a.Sub(amount.FromUint64(101))
	assert.Equal(t, fault.AmountUnderflow, err, "underflow not detected")
}

func TestCompare(t *testing.T) {

	a := amount.FromUint64(5)
	b := amount.FromUint64(10)

	assert.True(t, a.Less(b), "5 < 10 failed")
	assert.False(t, b.Less(a), "10 < 5 passed")
	assert.False(t, a.Less(a), "5 < 5 passed")
	assert.Equal(t, -1, a.Cmp(b), "wrong comparison")
	assert.Equal(t, 0, a.Cmp(a), "wrong comparison")
	assert.Equal(t, 1, b.Cmp(a), "wrong comparison")
}

func TestStorageEncoding(t *testing.T) {

	a, err := amount.FromString("36893488147419103232") // 2^65
	assert.Nil(t, err, "parse error")

	buffer := a.Bytes()
	assert.Equal(t, amount.Size, len(buffer), "wrong encoded size")

	expected := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, buffer, "not big endian")

	back, err := amount.FromBytes(buffer)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, 0, a.Cmp(back), "roundtrip mismatch")

	_, err = amount.FromBytes([]byte{0x01, 0x02})
	assert.Equal(t, fault.WrongRecordLength, err, "short record accepted")
}
