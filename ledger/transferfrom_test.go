// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
)

func TestTransferFrom(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(alice, bob, amount.FromUint64(30))
	assert.Nil(t, err, "approve error")

	err = ledger.TransferFrom(bob, alice, carol, amount.FromUint64(20))
	assert.Nil(t, err, "transfer from error")

	allowance, err := ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "10", allowance.String(), "wrong remaining allowance")

	assert.Equal(t, "80", balanceOf(t, alice), "wrong owner balance")
	assert.Equal(t, "20", balanceOf(t, carol), "wrong recipient balance")
	assert.Equal(t, "50", balanceOf(t, bob), "spender balance must not move")

	assert.Nil(t, ledger.Audit(), "audit error")
}

func TestTransferFromInsufficientAllowance(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(alice, bob, amount.FromUint64(30))
	assert.Nil(t, err, "approve error")

	err = ledger.TransferFrom(bob, alice, carol, amount.FromUint64(31))
	assert.Equal(t, fault.InsufficientAllowanceError{
		Allowance: "30",
		Required:  "31",
	}, err, "wrong error")

	// nothing changed
	allowance, err := ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "30", allowance.String(), "allowance moved")
	assert.Equal(t, "100", balanceOf(t, alice), "owner balance moved")
	assert.Equal(t, "0", balanceOf(t, carol), "recipient balance moved")
}

// no allowance at all reads as zero and fails the same way
func TestTransferFromWithoutApproval(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.TransferFrom(bob, alice, carol, amount.FromUint64(1))
	assert.Equal(t, fault.InsufficientAllowanceError{
		Allowance: "0",
		Required:  "1",
	}, err, "wrong error")
}

// the allowance reduction is staged before the balance check runs;
// a funds failure must discard that staged reduction too
func TestTransferFromAllowanceExceedsBalance(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(alice, bob, amount.FromUint64(500))
	assert.Nil(t, err, "approve error")

	err = ledger.TransferFrom(bob, alice, carol, amount.FromUint64(200))
	assert.Equal(t, fault.InsufficientFundsError{
		Balance:  "100",
		Required: "200",
	}, err, "wrong error")

	// the persisted allowance must be untouched
	allowance, err := ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "500", allowance.String(), "staged allowance reduction leaked")

	assert.Equal(t, "100", balanceOf(t, alice), "owner balance moved")
	assert.Equal(t, "0", balanceOf(t, carol), "recipient balance moved")
	assert.Nil(t, ledger.Audit(), "audit error")
}

// identifiers vary in length, so under bare concatenation the key
// bytes of (owner="11111", spender="1111") and the mirrored
// (owner="1111", spender="11111") would coincide; the two records
// must stay independent
func TestTransferFromPairKeyAmbiguity(t *testing.T) {
	setup(t)
	defer teardown(t)

	short := account.Identifier("1111")
	long := account.Identifier("11111")

	err := ledger.Instantiate(ledger.TokenDefinition{
		Name:     "Test Token",
		Symbol:   "TST",
		Decimals: 8,
		InitialBalances: []ledger.SeedBalance{
			{Address: short, Amount: amount.FromUint64(100)},
		},
	})
	assert.Nil(t, err, "instantiate error")

	err = ledger.Approve(long, short, amount.FromUint64(60))
	assert.Nil(t, err, "approve error")

	// the grant by long must not materialise for the mirrored pair
	allowance, err := ledger.Allowance(short, long)
	assert.Nil(t, err, "allowance error")
	assert.True(t, allowance.IsZero(), "grant leaked into the mirrored pair")

	// long never received a grant from short and draws nothing
	err = ledger.TransferFrom(long, short, carol, amount.FromUint64(60))
	assert.Equal(t, fault.InsufficientAllowanceError{
		Allowance: "0",
		Required:  "60",
	}, err, "unapproved spender drew funds")

	assert.Equal(t, "100", balanceOf(t, short), "owner balance moved")
	assert.Equal(t, "0", balanceOf(t, carol), "recipient balance moved")

	// the grant itself is intact
	allowance, err = ledger.Allowance(long, short)
	assert.Nil(t, err, "allowance error")
	assert.Equal(t, "60", allowance.String(), "wrong allowance")
}

func TestTransferFromExactAllowance(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Approve(alice, bob, amount.FromUint64(25))
	assert.Nil(t, err, "approve error")

	err = ledger.TransferFrom(bob, alice, carol, amount.FromUint64(25))
	assert.Nil(t, err, "transfer from error")

	allowance, err := ledger.Allowance(alice, bob)
	assert.Nil(t, err, "allowance error")
	assert.True(t, allowance.IsZero(), "allowance not exhausted")

	// a further draw fails on the zero allowance
	err = ledger.TransferFrom(bob, alice, carol, amount.FromUint64(1))
	assert.True(t, fault.IsErrInsufficientAllowance(err), "wrong error: %v", err)
}
