// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "token-cli"
	app.Usage = "connect to a tokend and run token commands and queries"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*tokend host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create the token with initial balances",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*token name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*token ticker symbol `STRING`",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " decimal places `N`",
				},
				cli.StringSliceFlag{
					Name:  "balance, b",
					Usage: " initial balance row `ADDRESS=AMOUNT`, repeatable",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "move tokens to a recipient",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*current owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*number of tokens `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "set a spender allowance, overwriting any previous one",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*granting owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*number of tokens `AMOUNT`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "transfer-from",
			Usage:     "draw on an allowance to move owner tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner to debit `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*number of tokens `AMOUNT`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:      "burn",
			Usage:     "destroy tokens, shrinking the supply",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner to debit `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*number of tokens `AMOUNT`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of one account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "allowance",
			Usage:     "display the allowance of a spender on an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*granting owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ADDRESS`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:   "info",
			Usage:  "display the token metadata and supply",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display this program version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		connect := c.GlobalString("connect")
		if "" == connect && "version" != c.Args().First() {
			return fmt.Errorf("missing connect HOST:PORT")
		}
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: connect,
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
