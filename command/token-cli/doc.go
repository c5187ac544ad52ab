// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for tokend
//
// e.g. to read a balance:
//      (add -v flag to see JSON requests and responses)
//
//   token-cli -c 127.0.0.1:2130 balance -o ADDRESS
package main
