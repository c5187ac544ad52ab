// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - fungible token state transitions
//
// The execution host serialises every call, so each operation here
// runs alone: read, decide, stage writes, then commit or abort as a
// single unit.  Balances and allowances missing from storage read as
// zero.  After every successful command the sum of all balances
// equals the stored total supply; burn is the only operation that
// moves the supply and only downward.
//
// Caller identity is supplied by the host and is trusted as already
// authenticated; only its format is checked here.
package ledger
