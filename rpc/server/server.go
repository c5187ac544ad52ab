// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/rpc/query"
	"github.com/bitmark-inc/tokend/rpc/token"
)

// Create - make a server with token and query handlers registered
func Create(log *logger.L, readOnly bool) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(token.New(log, readOnly))
	_ = server.Register(query.New(log))

	return server
}
