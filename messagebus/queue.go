// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Attribute - one human readable name/value pair
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Event - the attribute set from one successful command
type Event struct {
	Action     string      `json:"action"`
	Attributes []Attribute `json:"attributes"`
}

var (
	// for queueing events
	queue = make(chan Event, queueSize)
)

// Send - queue the event from one command
func Send(action string, attributes ...Attribute) {
	queue <- Event{
		Action:     action,
		Attributes: attributes,
	}
}

// Chan - channel to read from
func Chan() <-chan Event {
	return queue
}
