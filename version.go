// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package tnbbank

// Version is the current release of tnbbank, set at build time.
var Version = "v0.1.0-dev"
