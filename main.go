// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm

package main

import (
	"log"

	"github.com/usbarmory/go-echo/kernel"
	"github.com/usbarmory/go-echo/kio"
)

func init() {
	log.SetFlags(0)
}

func main() {
	if err := kernel.Boot(Board); err != nil {
		// the console might be unusable, this is a best effort
		kio.Printf(UART0, "%v\n", err)
		UART0.Flush()
	}

	kernel.Halt()
}
