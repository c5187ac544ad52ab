// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package call - the host facing call envelope
//
// The execution host decodes each incoming message into one of three
// shapes - initialize, command or query - and routes it here with
// the authenticated caller identity.  Every envelope carries exactly
// one named variant; the dispatcher rejects empty or ambiguous
// envelopes before any state is touched.  Errors from the ledger
// pass through unchanged.
package call
