// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokend/rpc/query"
)

// GetBalance - retrieve the balance of one account
func (client *Client) GetBalance(arguments *query.BalanceArguments) (*query.BalanceReply, error) {

	client.printJson("Balance Request", arguments)

	reply := &query.BalanceReply{}
	err := client.client.Call("Query.Balance", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetAllowance - retrieve the allowance of a spender on an owner
func (client *Client) GetAllowance(arguments *query.AllowanceArguments) (*query.AllowanceReply, error) {

	client.printJson("Allowance Request", arguments)

	reply := &query.AllowanceReply{}
	err := client.client.Call("Query.Allowance", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allowance Reply", reply)

	return reply, nil
}

// GetInfo - retrieve the token metadata and supply
func (client *Client) GetInfo() (*query.InfoReply, error) {

	client.printJson("Info Request", struct{}{})

	reply := &query.InfoReply{}
	err := client.client.Call("Query.Info", &query.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return reply, nil
}
