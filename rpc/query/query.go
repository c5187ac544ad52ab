// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

// Query
// -----

const (
	rateLimitQuery = 200
	rateBurstQuery = 100
)

// Query - type for RPC
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
	}
}

// Get a balance
// -------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner account.Identifier `json:"owner"`
}

// BalanceReply - current balance of an account
type BalanceReply struct {
	Balance amount.Amount `json:"balance"`
}

// Balance - read the balance of one account
func (query *Query) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}

	log := query.Log

	log.Infof("Query.Balance: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	balance, err := ledger.Balance(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Balance = balance

	return nil
}

// Get an allowance
// ----------------

// AllowanceArguments - arguments for RPC
type AllowanceArguments struct {
	Owner   account.Identifier `json:"owner"`
	Spender account.Identifier `json:"spender"`
}

// AllowanceReply - current allowance of a spender on an owner
type AllowanceReply struct {
	Allowance amount.Amount `json:"allowance"`
}

// Allowance - read the allowance granted by an owner to a spender
func (query *Query) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {

	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}

	log := query.Log

	log.Infof("Query.Allowance: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}

	allowance, err := ledger.Allowance(arguments.Owner, arguments.Spender)
	if nil != err {
		return err
	}
	reply.Allowance = allowance

	return nil
}

// Get the token info
// ------------------

// InfoArguments - placeholder for RPC
type InfoArguments struct{}

// InfoReply - token metadata and the current supply
type InfoReply struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Decimals    uint8         `json:"decimals"`
	TotalSupply amount.Amount `json:"totalSupply"`
}

// Info - read the token metadata and total supply
func (query *Query) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}

	log := query.Log

	log.Info("Query.Info")

	constants, err := ledger.TokenInfo()
	if nil != err {
		return err
	}
	supply, err := ledger.TotalSupply()
	if nil != err {
		return err
	}

	reply.Name = constants.Name
	reply.Symbol = constants.Symbol
	reply.Decimals = constants.Decimals
	reply.TotalSupply = supply

	return nil
}
