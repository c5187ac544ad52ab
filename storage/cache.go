// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read-your-writes view of the staged batch
//
// Get returns the staged operation so a staged delete can shadow an
// older record still present in the database
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

// staged operations
const (
	dbPut dbOperation = iota
	dbDelete
)

// entries only need to survive one host call, expiry is a backstop
const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 1 * time.Minute
)

type stagedCache struct {
	cache *cache.Cache
}

type stagedData struct {
	op    dbOperation
	value []byte
}

func newCache() Cache {
	return &stagedCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *stagedCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return []byte{}, dbPut, false
	}

	data := obj.(stagedData)
	return data.value, data.op, true
}

func (c *stagedCache) Set(op dbOperation, key string, value []byte) {
	c.cache.Set(key, stagedData{op: op, value: value}, defaultExpiration)
}

func (c *stagedCache) Clear() {
	c.cache.Flush()
}
