// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"net/rpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/rpc/listeners"
)

const logDirectory = "testing"

func setup(t *testing.T) *logger.L {
	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
	t.Cleanup(func() { os.RemoveAll(logDirectory) })
	return logger.New("test-listener")
}

func TestNewRPC(t *testing.T) {
	log := setup(t)

	l, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 100,
		Listen:             []string{"127.0.0.1:2130", "[::1]:2130", "*:2130"},
	}, log, rpc.NewServer())
	assert.Nil(t, err, "listener error")
	assert.NotNil(t, l, "missing listener")
}

func TestNewRPCNoConnections(t *testing.T) {
	log := setup(t)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}, log, rpc.NewServer())
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestNewRPCNoListen(t *testing.T) {
	log := setup(t)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 100,
	}, log, rpc.NewServer())
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestNewRPCBadAddress(t *testing.T) {
	log := setup(t)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 100,
		Listen:             []string{"this.is.not.an.ip:2130"},
	}, log, rpc.NewServer())
	assert.Equal(t, fault.InvalidIPAddress, err, "wrong error")
}
