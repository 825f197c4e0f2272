// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

//go:noinline
func nop() {}

// Spin busy waits for at least the given number of cycles, each iteration
// costs one call to a function the compiler is not allowed to inline.
func Spin(cycles int) {
	for i := 0; i < cycles; i++ {
		nop()
	}
}

// Relax is the single iteration spin primitive used while polling status
// flags.
func Relax() {
	nop()
}
