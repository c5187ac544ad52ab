// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package call

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
)

// Instantiate - route the one-time initialize call
func Instantiate(msg Initialize) error {

	seeds := make([]ledger.SeedBalance, len(msg.InitialBalances))
	for i, row := range msg.InitialBalances {
		seeds[i] = ledger.SeedBalance{
			Address: row.Address,
			Amount:  row.Amount,
		}
	}

	return ledger.Instantiate(ledger.TokenDefinition{
		Name:            msg.Name,
		Symbol:          msg.Symbol,
		Decimals:        msg.Decimals,
		InitialBalances: seeds,
	})
}

// Execute - route one command with its authenticated caller
//
// the caller is trusted as authenticated by the host and is not
// re-checked here
func Execute(caller account.Identifier, command Command) error {

	variants := 0
	if nil != command.Transfer {
		variants += 1
	}
	if nil != command.Approve {
		variants += 1
	}
	if nil != command.TransferFrom {
		variants += 1
	}
	if nil != command.Burn {
		variants += 1
	}

	switch {
	case variants > 1:
		return fault.AmbiguousCall

	case nil != command.Transfer:
		return ledger.Transfer(caller, command.Transfer.Recipient, command.Transfer.Amount)

	case nil != command.Approve:
		return ledger.Approve(caller, command.Approve.Spender, command.Approve.Amount)

	case nil != command.TransferFrom:
		return ledger.TransferFrom(caller,
			command.TransferFrom.Owner,
			command.TransferFrom.Recipient,
			command.TransferFrom.Amount)

	case nil != command.Burn:
		return ledger.Burn(caller, command.Burn.Amount)

	default:
		return fault.UnknownCommand
	}
}

// Read - route one query
func Read(query Query) (Answer, error) {

	answer := Answer{}

	variants := 0
	if nil != query.Balance {
		variants += 1
	}
	if nil != query.Allowance {
		variants += 1
	}
	if nil != query.TokenInfo {
		variants += 1
	}

	switch {
	case variants > 1:
		return answer, fault.AmbiguousCall

	case nil != query.Balance:
		balance, err := ledger.Balance(query.Balance.Address)
		if nil != err {
			return answer, err
		}
		answer.Balance = &BalanceResponse{Balance: balance}
		return answer, nil

	case nil != query.Allowance:
		allowance, err := ledger.Allowance(query.Allowance.Owner, query.Allowance.Spender)
		if nil != err {
			return answer, err
		}
		answer.Allowance = &AllowanceResponse{Allowance: allowance}
		return answer, nil

	case nil != query.TokenInfo:
		info, err := ledger.TokenInfo()
		if nil != err {
			return answer, err
		}
		supply, err := ledger.TotalSupply()
		if nil != err {
			return answer, err
		}
		answer.TokenInfo = &TokenInfoResponse{
			Name:        info.Name,
			Symbol:      info.Symbol,
			Decimals:    info.Decimals,
			TotalSupply: supply,
		}
		return answer, nil

	default:
		return answer, fault.UnknownQuery
	}
}
