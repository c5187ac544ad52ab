// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/messagebus"
	"github.com/bitmark-inc/tokend/storage"
)

// Transfer - move quantity from the caller to a recipient
//
// a zero quantity is a valid transfer and still writes both
// records; a self transfer nets out but is not short circuited
func Transfer(caller account.Identifier, recipient account.Identifier, quantity amount.Amount) error {
	err := mustExist()
	if nil != err {
		return err
	}
	err = validateIdentifier(recipient)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = performTransfer(trx, caller, recipient, quantity)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Debugf("transfer: %s -> %s  quantity: %s", caller, recipient, quantity)
	messagebus.Send("transfer",
		messagebus.Attribute{Name: "sender", Value: caller.String()},
		messagebus.Attribute{Name: "recipient", Value: recipient.String()},
		messagebus.Attribute{Name: "amount", Value: quantity.String()},
	)
	return nil
}

// TransferFrom - delegated transfer drawing on an allowance
//
// the allowance for (owner, caller) is reduced first, then the same
// debit/credit as a direct transfer runs between owner and
// recipient; all writes share one transaction so a balance failure
// also discards the staged allowance reduction
func TransferFrom(caller account.Identifier, owner account.Identifier, recipient account.Identifier, quantity amount.Amount) error {
	err := mustExist()
	if nil != err {
		return err
	}
	err = validateIdentifier(owner)
	if nil != err {
		return err
	}
	err = validateIdentifier(recipient)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := allowanceKey(owner, caller)
	allowance, _ := trx.GetN(storage.Pool.Allowances, key)
	if allowance.Less(quantity) {
		trx.Abort()
		return fault.InsufficientAllowanceError{
			Allowance: allowance.String(),
			Required:  quantity.String(),
		}
	}

	remaining, err := allowance.Sub(quantity)
	if nil != err {
		trx.Abort()
		return err
	}
	trx.PutN(storage.Pool.Allowances, key, remaining)

	err = performTransfer(trx, owner, recipient, quantity)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Debugf("transfer from: %s: %s -> %s  quantity: %s", caller, owner, recipient, quantity)
	messagebus.Send("transfer_from",
		messagebus.Attribute{Name: "spender", Value: caller.String()},
		messagebus.Attribute{Name: "owner", Value: owner.String()},
		messagebus.Attribute{Name: "recipient", Value: recipient.String()},
		messagebus.Attribute{Name: "amount", Value: quantity.String()},
	)
	return nil
}

// debit from, credit to, all on the staged view
//
// reads default to zero for missing records; the debit is checked
// before any write so an insufficient balance changes nothing
func performTransfer(trx storage.Transaction, from account.Identifier, to account.Identifier, quantity amount.Amount) error {

	fromBalance, _ := trx.GetN(storage.Pool.Balances, from.Bytes())
	if fromBalance.Less(quantity) {
		return fault.InsufficientFundsError{
			Balance:  fromBalance.String(),
			Required: quantity.String(),
		}
	}

	newFromBalance, err := fromBalance.Sub(quantity)
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.Balances, from.Bytes(), newFromBalance)

	// a self transfer reads the staged debit here so the credit
	// nets back to the starting balance
	toBalance, _ := trx.GetN(storage.Pool.Balances, to.Bytes())
	newToBalance, err := toBalance.Add(quantity)
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.Balances, to.Bytes(), newToBalance)

	return nil
}

// storage key for one (owner, spender) pair
//
// identifiers vary in length so the components are separated by a
// NUL, a byte that can never occur in a Base58 string; a bare
// concatenation would let different pairs share one key
func allowanceKey(owner account.Identifier, spender account.Identifier) []byte {
	key := make([]byte, 0, len(owner)+len(spender)+1)
	key = append(key, owner.Bytes()...)
	key = append(key, 0x00)
	return append(key, spender.Bytes()...)
}
