// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk ledger store
//
// maintain separate pools of key->value records inside one LevelDB
// database, each pool a single byte prefix obtained from the prefix
// tag in the struct defining the available pools
//
// Notes:
// 1. ++         = concatenation of byte data
// 2. identifier = raw bytes of an account identifier string
// 3. quantity   = big endian unsigned 128 bit value (16 bytes)
//
// Config:
//
//   C ++ "constants"    - token metadata
//                         data: JSON{name, symbol, decimals}
//   C ++ "total_supply" - sum of all balances
//                         data: quantity
//
// Balances:
//
//   B ++ identifier     - account balance
//                         data: quantity
//
// Allowances:
//
//   A ++ owner identifier ++ NUL ++ spender identifier
//                       - spending ceiling granted to spender
//                         data: quantity
//                         (identifiers vary in length; the NUL
//                         separator cannot occur in Base58 so the
//                         pair is unambiguous)
//
// a missing balance or allowance record reads as a zero quantity
//
// writes are staged in a batch together with a read-through cache so
// a call sees its own writes; the batch is flushed only by an
// explicit commit and an abort discards everything, giving the
// ledger its buffer-then-commit unit
package storage
