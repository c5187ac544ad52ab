// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - ledger error instances
//
// Provides a single instance of each error to allow easy comparison
// by identity instead of partial string matches
package fault
