// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package util

import (
	"testing"
)

func TestOr(t *testing.T) {
	if v := Or("", " b ", "c"); v != "b" {
		t.Errorf("got %q", v)
	}
	if v := Or("a", "b"); v != "a" {
		t.Errorf("got %q", v)
	}
	if v := Or(" ", ""); v != "" {
		t.Errorf("got %q", v)
	}
	if v := Or(); v != "" {
		t.Errorf("got %q", v)
	}
}
