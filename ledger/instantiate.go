// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// SeedBalance - one initial balance row
type SeedBalance struct {
	Address account.Identifier `json:"address"`
	Amount  amount.Amount      `json:"amount"`
}

// TokenDefinition - the one-time instantiation data
type TokenDefinition struct {
	Name            string        `json:"name"`
	Symbol          string        `json:"symbol"`
	Decimals        uint8         `json:"decimals"`
	InitialBalances []SeedBalance `json:"initial_balances"`
}

// Instantiate - create the token, seed balances and set the supply
//
// seed rows are applied in order, a duplicate address overwrites the
// earlier balance but every row still adds into the total supply;
// metadata is validated after seeding and any failure aborts the
// whole call so nothing is committed
func Instantiate(definition TokenDefinition) error {
	globalData.RLock()
	initialised := globalData.initialised
	globalData.RUnlock()
	if !initialised {
		return fault.NotInitialised
	}

	if storage.Pool.Config.Has(constantsKey) {
		return fault.TokenAlreadyExists
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	// seed balances are written before the metadata is validated so a
	// metadata failure still abandons the whole staged batch
	totalSupply := amount.Zero()
	for _, row := range definition.InitialBalances {
		trx.PutN(storage.Pool.Balances, row.Address.Bytes(), row.Amount)
		totalSupply, err = totalSupply.Add(row.Amount)
		if nil != err {
			trx.Abort()
			return err
		}
	}

	if !isValidName(definition.Name) {
		trx.Abort()
		return fault.NameWrongFormat
	}
	if !isValidSymbol(definition.Symbol) {
		trx.Abort()
		return fault.TickerWrongSymbolFormat
	}
	if definition.Decimals > maximumDecimals {
		trx.Abort()
		return fault.DecimalsExceeded
	}

	constants, err := json.Marshal(Constants{
		Name:     definition.Name,
		Symbol:   definition.Symbol,
		Decimals: definition.Decimals,
	})
	if nil != err {
		trx.Abort()
		return err
	}

	trx.Put(storage.Pool.Config, constantsKey, constants)
	trx.PutN(storage.Pool.Config, totalSupplyKey, totalSupply)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("token instantiated: %q (%s)  supply: %s",
		definition.Name, definition.Symbol, totalSupply)
	return nil
}
