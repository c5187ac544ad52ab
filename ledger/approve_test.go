// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
)

func TestApproveOverwrites(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(alice, bob, amount.FromUint64(30))
	assert.Nil(t, err, "approve error")

	allowance, err := ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "30", allowance.String(), "wrong allowance")

	// an absolute overwrite, never N + M
	err = ledger.Approve(alice, bob, amount.FromUint64(12))
	assert.Nil(t, err, "approve error")

	allowance, err = ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "12", allowance.String(), "allowance must not accumulate")

	// resetting to zero is valid
	err = ledger.Approve(alice, bob, amount.Zero())
	assert.Nil(t, err, "approve error")

	allowance, err = ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.True(t, allowance.IsZero(), "allowance not reset")
}

// no balance check: an owner may approve more than currently held
func TestApproveBeyondBalance(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(carol, bob, amount.FromUint64(1000000))
	assert.Nil(t, err, "approve error")

	allowance, err := ledger.Allowance(carol, bob)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "1000000", allowance.String(), "wrong allowance")
}

func TestApproveInvalidSpender(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(alice, "", amount.FromUint64(1))
	assert.Equal(t, fault.InvalidIdentifier, err, "wrong error")
}

func TestAllowanceDefaultsToZero(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	allowance, err := ledger.Allowance(alice, carol)
	assert.Nil(t, err, "allowance error")
	assert.True(t, allowance.IsZero(), "absent allowance not zero")
}
