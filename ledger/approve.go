// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/messagebus"
	"github.com/bitmark-inc/tokend/storage"
)

// Approve - set the allowance for (caller, spender) to exactly quantity
//
// an absolute overwrite, never additive, and no balance check: the
// caller may approve more than currently held.  A spender holding an
// unspent allowance can race a reduction, the classic approve
// hazard; hosts wanting protection set the allowance to zero first.
func Approve(caller account.Identifier, spender account.Identifier, quantity amount.Amount) error {
	err := mustExist()
	if nil != err {
		return err
	}
	err = validateIdentifier(spender)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.PutN(storage.Pool.Allowances, allowanceKey(caller, spender), quantity)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Debugf("approve: %s allows %s  quantity: %s", caller, spender, quantity)
	messagebus.Send("approve",
		messagebus.Attribute{Name: "owner", Value: caller.String()},
		messagebus.Attribute{Name: "spender", Value: spender.String()},
		messagebus.Attribute{Name: "amount", Value: quantity.String()},
	)
	return nil
}
