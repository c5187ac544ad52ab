// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokend/amount"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("shared-key")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(storage.Pool.Balances, key, []byte("in balances"))
	trx.Put(storage.Pool.Allowances, key, []byte("in allowances"))
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	// same key bytes must resolve independently per pool
	assert.Equal(t, []byte("in balances"), storage.Pool.Balances.Get(key), "balances record")
	assert.Equal(t, []byte("in allowances"), storage.Pool.Allowances.Get(key), "allowances record")
	assert.Nil(t, storage.Pool.Config.Get(key), "config pool must stay empty")
}

func TestAbsentReadsAsZero(t *testing.T) {
	setup(t)
	defer teardown(t)

	balance, found := storage.Pool.Balances.GetN([]byte("nobody"))
	assert.False(t, found, "missing record reported as found")
	assert.True(t, balance.IsZero(), "missing record not zero")
}

func TestQuantityRoundtrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("carol")
	value, err := amount.FromString("18446744073709551616") // 2^64
	assert.Nil(t, err, "parse error")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.PutN(storage.Pool.Balances, key, value)
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	back, found := storage.Pool.Balances.GetN(key)
	assert.True(t, found, "record not found")
	assert.Equal(t, 0, value.Cmp(back), "roundtrip mismatch")

	raw := storage.Pool.Balances.Get(key)
	assert.Equal(t, amount.Size, len(raw), "wrong record width")
}

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, false)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise accepted")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	records := map[string]uint64{
		"alice": 100,
		"bob":   50,
		"carol": 25,
	}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	for name, quantity := range records {
		trx.PutN(storage.Pool.Balances, []byte(name), amount.FromUint64(quantity))
	}

	// filler in another pool that a balances scan must not see
	trx.Put(storage.Pool.Allowances, []byte("alice"), []byte("filler"))
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	total := amount.Zero()
	count := 0
	err = storage.Pool.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		quantity, err := amount.FromBytes(value)
		if nil != err {
			return err
		}
		_, ok := records[string(key)]
		assert.True(t, ok, "unexpected key: %q", key)
		total, err = total.Add(quantity)
		count += 1
		return err
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, len(records), count, "wrong record count")
	assert.Equal(t, "175", total.String(), "wrong total")
}
