// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/messagebus"
	"github.com/bitmark-inc/tokend/storage"
)

// Burn - destroy quantity from the caller's balance
//
// the total supply shrinks by the same quantity; a missing supply
// record after instantiation means the store is corrupt and is fatal
func Burn(caller account.Identifier, quantity amount.Amount) error {
	err := mustExist()
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	balance, _ := trx.GetN(storage.Pool.Balances, caller.Bytes())
	if balance.Less(quantity) {
		trx.Abort()
		return fault.InsufficientFundsError{
			Balance:  balance.String(),
			Required: quantity.String(),
		}
	}

	newBalance, err := balance.Sub(quantity)
	if nil != err {
		trx.Abort()
		return err
	}
	trx.PutN(storage.Pool.Balances, caller.Bytes(), newBalance)

	totalSupply, ok := trx.GetN(storage.Pool.Config, totalSupplyKey)
	if !ok {
		logger.Panic("ledger.Burn: total supply record missing, config pool corrupt")
	}

	newSupply, err := totalSupply.Sub(quantity)
	if nil != err {
		// supply below a confirmed balance breaks conservation
		logger.Panicf("ledger.Burn: supply: %s below burn quantity: %s, store corrupt", totalSupply, quantity)
	}
	trx.PutN(storage.Pool.Config, totalSupplyKey, newSupply)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Debugf("burn: %s  quantity: %s  supply now: %s", caller, quantity, newSupply)
	messagebus.Send("burn",
		messagebus.Attribute{Name: "account", Value: caller.String()},
		messagebus.Attribute{Name: "amount", Value: quantity.String()},
	)
	return nil
}
