// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - unsigned token quantities
//
// Quantities are limited to 128 bits, all arithmetic is checked and
// an out of range result is an error, never a wrapped value.  The
// storage encoding is a fixed 16 byte big endian form so that keys
// and values pack directly into the ledger pools.
package amount
