// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// globals for this module
type ledgerData struct {
	sync.RWMutex

	log *logger.L

	// host supplied identifier format check
	validate account.Validator

	// set once during initialise
	initialised bool
}

// global data
var globalData ledgerData

// Initialise - setup the ledger processing
//
// storage must already be initialised; a nil validator selects the
// default account rules
func Initialise(validate account.Validator) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if !storage.IsInitialised() {
		return fault.NotInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	if nil == validate {
		validate = account.Validate
	}
	globalData.validate = validate

	globalData.initialised = true
	return nil
}

// Finalise - shutdown the ledger processing
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// ensure the module is ready and a token exists
func mustExist() error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !storage.Pool.Config.Has(constantsKey) {
		return fault.TokenNotFound
	}
	return nil
}

// run the host supplied identifier check
func validateIdentifier(id account.Identifier) error {
	globalData.RLock()
	validate := globalData.validate
	globalData.RUnlock()
	return validate(id)
}
