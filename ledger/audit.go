// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// Audit - verify conservation of value over the committed store
//
// sums every balance record and compares against the supply counter;
// run at daemon startup before serving any call.  A store without a
// token yet is trivially consistent.
func Audit() error {
	globalData.RLock()
	initialised := globalData.initialised
	globalData.RUnlock()
	if !initialised {
		return fault.NotInitialised
	}

	if !storage.Pool.Config.Has(constantsKey) {
		return nil
	}

	totalSupply, ok := storage.Pool.Config.GetN(totalSupplyKey)
	if !ok {
		return fault.RecordError("audit: total supply record missing")
	}

	sum := amount.Zero()
	err := storage.Pool.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		balance, err := amount.FromBytes(value)
		if nil != err {
			return fmt.Errorf("audit: balance record for %q: %s", key, err)
		}
		sum, err = sum.Add(balance)
		return err
	})
	if nil != err {
		return err
	}

	if 0 != sum.Cmp(totalSupply) {
		return fault.RecordError(fmt.Sprintf("audit: balance sum: %s  total supply: %s", sum, totalSupply))
	}

	globalData.log.Infof("audit passed: supply: %s", totalSupply)
	return nil
}
