// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokend/command/token-cli/rpccalls"
	"github.com/bitmark-inc/tokend/rpc/token"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkIdentifier("owner", c.String("owner"))
	if nil != err {
		return err
	}

	recipient, err := checkIdentifier("recipient", c.String("recipient"))
	if nil != err {
		return err
	}

	quantity, err := checkAmount("quantity", c.String("quantity"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "quantity: %s\n", quantity)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&token.TransferArguments{
		Owner:     owner,
		Recipient: recipient,
		Quantity:  quantity,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
