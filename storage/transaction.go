// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/tokend/amount"
)

// Transaction - buffer-then-commit write unit for one host call
//
// all writes from one command are staged here and either flushed
// together by Commit or discarded together by Abort; the ledger
// never leaves a partial state behind
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (amount.Amount, bool)
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, amount.Amount)
}

type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value amount.Amount) {
	handle.put(key, value.Bytes())
}

func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionData) GetN(handle *PoolHandle, key []byte) (amount.Amount, bool) {
	return handle.GetN(key)
}
