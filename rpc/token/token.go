// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

// Token
// -----

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for RPC
//
// the caller identity on each command is supplied by the connecting
// host and is trusted, authentication is outside this daemon
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	ReadOnly bool
}

func New(log *logger.L, readOnly bool) *Token {
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		ReadOnly: readOnly,
	}
}

// Create the token
// ----------------

// CreateArguments - token metadata and the initial balance rows
type CreateArguments struct {
	Name            string               `json:"name"`
	Symbol          string               `json:"symbol"`
	Decimals        uint8                `json:"decimals"`
	InitialBalances []ledger.SeedBalance `json:"initialBalances"`
}

// CreateReply - result from creating the token
type CreateReply struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Decimals    uint8         `json:"decimals"`
	TotalSupply amount.Amount `json:"totalSupply"`
}

// Create - one time token instantiation
func (token *Token) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if token.ReadOnly {
		return fault.NotAvailableInReadOnly
	}

	log := token.Log

	log.Infof("Token.Create: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	err := ledger.Instantiate(ledger.TokenDefinition{
		Name:            arguments.Name,
		Symbol:          arguments.Symbol,
		Decimals:        arguments.Decimals,
		InitialBalances: arguments.InitialBalances,
	})
	if nil != err {
		return err
	}

	supply, err := ledger.TotalSupply()
	if nil != err {
		return err
	}

	reply.Name = arguments.Name
	reply.Symbol = arguments.Symbol
	reply.Decimals = arguments.Decimals
	reply.TotalSupply = supply

	return nil
}

// Transfer some tokens
// --------------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Owner     account.Identifier `json:"owner"`
	Recipient account.Identifier `json:"recipient"`
	Quantity  amount.Amount      `json:"quantity"`
}

// TransferReply - owner balance after the transfer
type TransferReply struct {
	Remaining amount.Amount `json:"remaining"`
}

// Transfer - move tokens from the owner to the recipient
func (token *Token) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if token.ReadOnly {
		return fault.NotAvailableInReadOnly
	}

	log := token.Log

	log.Infof("Token.Transfer: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	err := ledger.Transfer(arguments.Owner, arguments.Recipient, arguments.Quantity)
	if nil != err {
		return err
	}

	remaining, err := ledger.Balance(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Remaining = remaining

	return nil
}

// Approve a spender
// -----------------

// ApproveArguments - arguments for RPC
type ApproveArguments struct {
	Owner    account.Identifier `json:"owner"`
	Spender  account.Identifier `json:"spender"`
	Quantity amount.Amount      `json:"quantity"`
}

// ApproveReply - the allowance as stored
type ApproveReply struct {
	Allowance amount.Amount `json:"allowance"`
}

// Approve - set the spender allowance, overwriting any previous value
func (token *Token) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if token.ReadOnly {
		return fault.NotAvailableInReadOnly
	}

	log := token.Log

	log.Infof("Token.Approve: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	err := ledger.Approve(arguments.Owner, arguments.Spender, arguments.Quantity)
	if nil != err {
		return err
	}

	allowance, err := ledger.Allowance(arguments.Owner, arguments.Spender)
	if nil != err {
		return err
	}
	reply.Allowance = allowance

	return nil
}

// Transfer on an allowance
// ------------------------

// TransferFromArguments - arguments for RPC
type TransferFromArguments struct {
	Spender   account.Identifier `json:"spender"`
	Owner     account.Identifier `json:"owner"`
	Recipient account.Identifier `json:"recipient"`
	Quantity  amount.Amount      `json:"quantity"`
}

// TransferFromReply - allowance left after the draw
type TransferFromReply struct {
	Remaining amount.Amount `json:"remaining"`
}

// TransferFrom - spender moves tokens out of the owner balance
func (token *Token) TransferFrom(arguments *TransferFromArguments, reply *TransferFromReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if token.ReadOnly {
		return fault.NotAvailableInReadOnly
	}

	log := token.Log

	log.Infof("Token.TransferFrom: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	err := ledger.TransferFrom(arguments.Spender, arguments.Owner, arguments.Recipient, arguments.Quantity)
	if nil != err {
		return err
	}

	remaining, err := ledger.Allowance(arguments.Owner, arguments.Spender)
	if nil != err {
		return err
	}
	reply.Remaining = remaining

	return nil
}

// Burn some tokens
// ----------------

// BurnArguments - arguments for RPC
type BurnArguments struct {
	Owner    account.Identifier `json:"owner"`
	Quantity amount.Amount      `json:"quantity"`
}

// BurnReply - owner balance and supply after the burn
type BurnReply struct {
	Remaining   amount.Amount `json:"remaining"`
	TotalSupply amount.Amount `json:"totalSupply"`
}

// Burn - destroy tokens from the owner balance, shrinking the supply
func (token *Token) Burn(arguments *BurnArguments, reply *BurnReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}
	if token.ReadOnly {
		return fault.NotAvailableInReadOnly
	}

	log := token.Log

	log.Infof("Token.Burn: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	err := ledger.Burn(arguments.Owner, arguments.Quantity)
	if nil != err {
		return err
	}

	remaining, err := ledger.Balance(arguments.Owner)
	if nil != err {
		return err
	}
	supply, err := ledger.TotalSupply()
	if nil != err {
		return err
	}
	reply.Remaining = remaining
	reply.TotalSupply = supply

	return nil
}
