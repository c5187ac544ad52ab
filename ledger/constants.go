// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// config pool keys
var (
	constantsKey   = []byte("constants")
	totalSupplyKey = []byte("total_supply")
)

// metadata bounds
const (
	minimumNameLength   = 3
	maximumNameLength   = 30
	minimumSymbolLength = 3
	maximumSymbolLength = 6
	maximumDecimals     = 18
)

// Constants - immutable token metadata
//
// written once at instantiation, never changed by any command
type Constants struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// display name: 3 to 30 bytes
func isValidName(name string) bool {
	n := len(name)
	return n >= minimumNameLength && n <= maximumNameLength
}

// ticker symbol: 3 to 6 bytes, upper case ASCII letters only
func isValidSymbol(symbol string) bool {
	n := len(symbol)
	if n < minimumSymbolLength || n > maximumSymbolLength {
		return false
	}
	for i := 0; i < n; i += 1 {
		if symbol[i] < 'A' || symbol[i] > 'Z' {
			return false
		}
	}
	return true
}
