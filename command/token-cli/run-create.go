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

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing token name")
	}

	symbol := c.String("symbol")
	if "" == symbol {
		return fmt.Errorf("missing token symbol")
	}

	decimals := c.Uint("decimals")
	if decimals > 255 {
		return fmt.Errorf("invalid decimals: %d", decimals)
	}

	seeds, err := checkSeedBalances(c.StringSlice("balance"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "symbol: %s\n", symbol)
		fmt.Fprintf(m.e, "decimals: %d\n", decimals)
		fmt.Fprintf(m.e, "balances: %d rows\n", len(seeds))
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(&token.CreateArguments{
		Name:            name,
		Symbol:          symbol,
		Decimals:        uint8(decimals),
		InitialBalances: seeds,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
