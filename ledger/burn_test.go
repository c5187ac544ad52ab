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
	"github.com/bitmark-inc/tokend/messagebus"
)

func TestBurn(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Burn(alice, amount.FromUint64(40))
	assert.Nil(t, err, "burn error")

	assert.Equal(t, "60", balanceOf(t, alice), "wrong balance")

	supply, err := ledger.TotalSupply()
	assert.Nil(t, err, "total supply error")
	assert.Equal(t, "110", supply.String(), "supply must shrink by the burn")

	assert.Nil(t, ledger.Audit(), "audit error")
}

func TestBurnInsufficientFunds(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Burn(bob, amount.FromUint64(51))
	assert.Equal(t, fault.InsufficientFundsError{
		Balance:  "50",
		Required: "51",
	}, err, "wrong error")

	// nothing changed
	assert.Equal(t, "50", balanceOf(t, bob), "balance moved")

	supply, err := ledger.TotalSupply()
	assert.Nil(t, err, "total supply error")
	assert.Equal(t, "150", supply.String(), "supply moved")
}

func TestBurnAll(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)

	err := ledger.Burn(bob, amount.FromUint64(50))
	assert.Nil(t, err, "burn error")

	assert.Equal(t, "0", balanceOf(t, bob), "wrong balance")

	supply, err := ledger.TotalSupply()
	assert.Nil(t, err, "total supply error")
	assert.Equal(t, "100", supply.String(), "wrong supply")
	assert.Nil(t, ledger.Audit(), "audit error")
}

func TestBurnEvent(t *testing.T) {
	setup(t)
	defer teardown(t)
	instantiateTestToken(t)
	drainEvents()

	err := ledger.Burn(alice, amount.FromUint64(7))
	assert.Nil(t, err, "burn error")

	event := <-messagebus.Chan()
	assert.Equal(t, "burn", event.Action, "wrong action")
	assert.Equal(t, []messagebus.Attribute{
		{Name: "account", Value: alice.String()},
		{Name: "amount", Value: "7"},
	}, event.Attributes, "wrong attributes")
}
