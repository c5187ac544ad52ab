// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tokend/rpc/token"
)

// Create - one time token instantiation
func (client *Client) Create(arguments *token.CreateArguments) (*token.CreateReply, error) {

	client.printJson("Create Request", arguments)

	reply := &token.CreateReply{}
	err := client.client.Call("Token.Create", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return reply, nil
}

// Transfer - move tokens to a recipient
func (client *Client) Transfer(arguments *token.TransferArguments) (*token.TransferReply, error) {

	client.printJson("Transfer Request", arguments)

	reply := &token.TransferReply{}
	err := client.client.Call("Token.Transfer", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return reply, nil
}

// Approve - set a spender allowance
func (client *Client) Approve(arguments *token.ApproveArguments) (*token.ApproveReply, error) {

	client.printJson("Approve Request", arguments)

	reply := &token.ApproveReply{}
	err := client.client.Call("Token.Approve", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Approve Reply", reply)

	return reply, nil
}

// TransferFrom - draw on an allowance
func (client *Client) TransferFrom(arguments *token.TransferFromArguments) (*token.TransferFromReply, error) {

	client.printJson("TransferFrom Request", arguments)

	reply := &token.TransferFromReply{}
	err := client.client.Call("Token.TransferFrom", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("TransferFrom Reply", reply)

	return reply, nil
}

// Burn - destroy tokens
func (client *Client) Burn(arguments *token.BurnArguments) (*token.BurnReply, error) {

	client.printJson("Burn Request", arguments)

	reply := &token.BurnReply{}
	err := client.client.Call("Token.Burn", arguments, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Burn Reply", reply)

	return reply, nil
}
