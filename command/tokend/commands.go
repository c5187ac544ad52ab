// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/ledger"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "audit", "a", "info", "i":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help          (h)    - display this message\n\n")
		fmt.Printf("  version       (v)    - display version string\n\n")

		fmt.Printf("  start         (run)  - just run the program, same as no arguments\n")
		fmt.Printf("                         for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test   (cfg)  - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  audit         (a)    - check stored balances against the recorded supply\n")
		fmt.Printf("\n")

		fmt.Printf("  info          (i)    - display the token metadata and supply\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are enabled so these commands can access the database
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "audit", "a":
		if err := ledger.Audit(); nil != err {
			exitwithstatus.Message("audit error: %s", err)
		}
		fmt.Printf("audit ok\n")

	case "info", "i":
		constants, err := ledger.TokenInfo()
		if nil != err {
			exitwithstatus.Message("token info error: %s", err)
		}
		supply, err := ledger.TotalSupply()
		if nil != err {
			exitwithstatus.Message("total supply error: %s", err)
		}
		fmt.Printf("name:         %s\n", constants.Name)
		fmt.Printf("symbol:       %s\n", constants.Symbol)
		fmt.Printf("decimals:     %d\n", constants.Decimals)
		fmt.Printf("total supply: %s\n", supply)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}
