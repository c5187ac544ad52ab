// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/messagebus"
)

func TestQueue(t *testing.T) {

	messagebus.Send("transfer",
		messagebus.Attribute{Name: "sender", Value: "one"},
		messagebus.Attribute{Name: "recipient", Value: "two"},
		messagebus.Attribute{Name: "amount", Value: "3"},
	)
	messagebus.Send("burn")

	event := <-messagebus.Chan()
	assert.Equal(t, "transfer", event.Action, "wrong action")
	assert.Equal(t, 3, len(event.Attributes), "wrong attribute count")
	assert.Equal(t, "sender", event.Attributes[0].Name, "wrong attribute name")
	assert.Equal(t, "one", event.Attributes[0].Value, "wrong attribute value")

	event = <-messagebus.Chan()
	assert.Equal(t, "burn", event.Action, "wrong action")
	assert.Equal(t, 0, len(event.Attributes), "wrong attribute count")
}
