// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package call

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
)

// Initialize - the one-time token creation call
type Initialize struct {
	Name            string        `json:"name"`
	Symbol          string        `json:"symbol"`
	Decimals        uint8         `json:"decimals"`
	InitialBalances []SeedBalance `json:"initial_balances"`
}

// SeedBalance - one initial balance row
type SeedBalance struct {
	Address account.Identifier `json:"address"`
	Amount  amount.Amount      `json:"amount"`
}

// Command - a state changing call, exactly one variant set
type Command struct {
	Transfer     *TransferCommand     `json:"transfer,omitempty"`
	Approve      *ApproveCommand      `json:"approve,omitempty"`
	TransferFrom *TransferFromCommand `json:"transfer_from,omitempty"`
	Burn         *BurnCommand         `json:"burn,omitempty"`
}

// TransferCommand - caller moves amount to recipient
type TransferCommand struct {
	Recipient account.Identifier `json:"recipient"`
	Amount    amount.Amount      `json:"amount"`
}

// ApproveCommand - caller grants spender an absolute allowance
type ApproveCommand struct {
	Spender account.Identifier `json:"spender"`
	Amount  amount.Amount      `json:"amount"`
}

// TransferFromCommand - caller spends from owner's balance
type TransferFromCommand struct {
	Owner     account.Identifier `json:"owner"`
	Recipient account.Identifier `json:"recipient"`
	Amount    amount.Amount      `json:"amount"`
}

// BurnCommand - caller destroys amount of own balance
type BurnCommand struct {
	Amount amount.Amount `json:"amount"`
}

// Query - a read only call, exactly one variant set
type Query struct {
	Balance   *BalanceQuery   `json:"balance,omitempty"`
	Allowance *AllowanceQuery `json:"allowance,omitempty"`
	TokenInfo *TokenInfoQuery `json:"token_info,omitempty"`
}

// BalanceQuery - balance of one account
type BalanceQuery struct {
	Address account.Identifier `json:"address"`
}

// AllowanceQuery - allowance for one (owner, spender) pair
type AllowanceQuery struct {
	Owner   account.Identifier `json:"owner"`
	Spender account.Identifier `json:"spender"`
}

// TokenInfoQuery - metadata and current supply
type TokenInfoQuery struct {
}

// Answer - the reply to a query, the field matching the variant set
type Answer struct {
	Balance   *BalanceResponse   `json:"balance,omitempty"`
	Allowance *AllowanceResponse `json:"allowance,omitempty"`
	TokenInfo *TokenInfoResponse `json:"token_info,omitempty"`
}

// BalanceResponse - reply to a balance query
type BalanceResponse struct {
	Balance amount.Amount `json:"balance"`
}

// AllowanceResponse - reply to an allowance query
type AllowanceResponse struct {
	Allowance amount.Amount `json:"allowance"`
}

// TokenInfoResponse - reply to a token info query
type TokenInfoResponse struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Decimals    uint8         `json:"decimals"`
	TotalSupply amount.Amount `json:"total_supply"`
}
