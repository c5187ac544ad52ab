// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers
//
// An identifier is an opaque Base58 string naming a balance holder.
// The execution host authenticates the caller; this package only
// provides the format validation the ledger calls before touching
// storage.  A host with different address rules substitutes its own
// Validator.
package account
