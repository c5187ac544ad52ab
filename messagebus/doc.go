// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue for the advisory events emitted by
// successful ledger commands
//
// events are observability only and never part of the state
// contract; a reader that falls behind delays commands rather than
// losing events
package messagebus
