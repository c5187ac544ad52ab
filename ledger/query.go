// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/storage"
)

// queries are pure reads of committed state, no transaction needed

// Balance - current balance of one account, zero if absent
func Balance(address account.Identifier) (amount.Amount, error) {
	err := mustExist()
	if nil != err {
		return amount.Zero(), err
	}
	err = validateIdentifier(address)
	if nil != err {
		return amount.Zero(), err
	}

	balance, _ := storage.Pool.Balances.GetN(address.Bytes())
	return balance, nil
}

// Allowance - current allowance for (owner, spender), zero if absent
func Allowance(owner account.Identifier, spender account.Identifier) (amount.Amount, error) {
	err := mustExist()
	if nil != err {
		return amount.Zero(), err
	}
	err = validateIdentifier(owner)
	if nil != err {
		return amount.Zero(), err
	}
	err = validateIdentifier(spender)
	if nil != err {
		return amount.Zero(), err
	}

	allowance, _ := storage.Pool.Allowances.GetN(allowanceKey(owner, spender))
	return allowance, nil
}

// TokenInfo - the immutable metadata set at instantiation
func TokenInfo() (Constants, error) {
	constants := Constants{}

	err := mustExist()
	if nil != err {
		return constants, err
	}

	buffer := storage.Pool.Config.Get(constantsKey)
	if nil == buffer {
		logger.Panic("ledger.TokenInfo: constants record missing, config pool corrupt")
	}
	err = json.Unmarshal(buffer, &constants)
	if nil != err {
		logger.Panicf("ledger.TokenInfo: constants record unreadable: %s", err)
	}
	return constants, nil
}

// TotalSupply - the current supply counter
func TotalSupply() (amount.Amount, error) {
	err := mustExist()
	if nil != err {
		return amount.Zero(), err
	}

	totalSupply, ok := storage.Pool.Config.GetN(totalSupplyKey)
	if !ok {
		logger.Panic("ledger.TotalSupply: total supply record missing, config pool corrupt")
	}
	return totalSupply, nil
}
