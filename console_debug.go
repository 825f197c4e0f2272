// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm && debug

package main

import (
	"log"
)

func init() {
	log.SetPrefix("go-echo: ")
}
