// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/ledger"
	"github.com/bitmark-inc/tokend/messagebus"
	"github.com/bitmark-inc/tokend/storage"
)

// test files
const (
	databaseFileName = "test.leveldb"
	logDirectory     = "testing"
)

// well formed test identifiers
var (
	alice = account.Identifier(base58.Encode([]byte("alice.test.account")))
	bob   = account.Identifier(base58.Encode([]byte("bob.test.account")))
	carol = account.Identifier(base58.Encode([]byte("carol.test.account")))
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, false)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = ledger.Initialise(nil)
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = ledger.Finalise()
	storage.Finalise()
	removeFiles()
}

// standard token used by most tests
func instantiateTestToken(t *testing.T) {
	err := ledger.Instantiate(ledger.TokenDefinition{
		Name:     "Test Token",
		Symbol:   "TST",
		Decimals: 8,
		InitialBalances: []ledger.SeedBalance{
			{Address: alice, Amount: amount.FromUint64(100)},
			{Address: bob, Amount: amount.FromUint64(50)},
		},
	})
	if nil != err {
		t.Fatalf("instantiate error: %s", err)
	}
}

// discard queued events so a test can observe just its own
func drainEvents() {
loop:
	for {
		select {
		case <-messagebus.Chan():
		default:
			break loop
		}
	}
}

// read the balance ignoring the error for brevity in assertions
func balanceOf(t *testing.T, id account.Identifier) string {
	balance, err := ledger.Balance(id)
	if nil != err {
		t.Fatalf("balance error for %q: %s", id, err)
	}
	return balance.String()
}
