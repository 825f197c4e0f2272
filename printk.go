// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm && linkprintk

package main

import (
	_ "unsafe"
)

// Without the linkprintk tag runtime output goes to the BCM2835 mini UART,
// whose pins are taken over by UART0 once the board is initialized.
//
//go:linkname printk runtime.printk
func printk(c byte) {
	UART0.Tx(c)
}
