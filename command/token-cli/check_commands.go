// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/ledger"
)

// checkIdentifier - validate an address flag
func checkIdentifier(flag string, s string) (account.Identifier, error) {
	if "" == s {
		return "", fmt.Errorf("missing %s address", flag)
	}
	id := account.Identifier(s)
	if err := account.Validate(id); nil != err {
		return "", fmt.Errorf("invalid %s address: %q  error: %s", flag, s, err)
	}
	return id, nil
}

// checkAmount - validate a decimal token quantity flag
func checkAmount(flag string, s string) (amount.Amount, error) {
	if "" == s {
		return amount.Zero(), fmt.Errorf("missing %s amount", flag)
	}
	a, err := amount.FromString(s)
	if nil != err {
		return amount.Zero(), fmt.Errorf("invalid %s amount: %q  error: %s", flag, s, err)
	}
	return a, nil
}

// checkSeedBalances - parse repeated ADDRESS=AMOUNT rows
func checkSeedBalances(rows []string) ([]ledger.SeedBalance, error) {
	seeds := make([]ledger.SeedBalance, 0, len(rows))
	for _, row := range rows {
		address, quantity, found := strings.Cut(row, "=")
		if !found {
			return nil, fmt.Errorf("invalid balance row: %q expected ADDRESS=AMOUNT", row)
		}
		id, err := checkIdentifier("balance", address)
		if nil != err {
			return nil, err
		}
		a, err := checkAmount("balance", quantity)
		if nil != err {
			return nil, err
		}
		seeds = append(seeds, ledger.SeedBalance{Address: id, Amount: a})
	}
	return seeds, nil
}
