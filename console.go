// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm && !debug

package main

import (
	"io"
	"log"
)

// The console is shared between runtime logging and the echo service, which
// must stay silent until the first newline. Boot diagnostics are therefore
// only logged in debug builds.
func init() {
	log.SetOutput(io.Discard)
}
