// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/tokend/util"
)

func TestEnsureAbsolute(t *testing.T) {

	testList := []struct {
		directory string
		filePath  string
		expected  string
	}{
		{"/var/lib/tokend", "tokend.conf", "/var/lib/tokend/tokend.conf"},
		{"/var/lib/tokend", "/etc/tokend.conf", "/etc/tokend.conf"},
		{"/var/lib/tokend", "./log/../tokend.conf", "/var/lib/tokend/tokend.conf"},
	}

	for i, item := range testList {
		actual := util.EnsureAbsolute(item.directory, item.filePath)
		if actual != item.expected {
			t.Errorf("%d: actual: %q  expected: %q", i, actual, item.expected)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {

	name := filepath.Join(t.TempDir(), "present.conf")

	if util.EnsureFileExists(name) {
		t.Errorf("missing file reported as existing: %q", name)
	}

	err := os.WriteFile(name, []byte("-- empty\n"), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	if !util.EnsureFileExists(name) {
		t.Errorf("existing file reported as missing: %q", name)
	}
}
