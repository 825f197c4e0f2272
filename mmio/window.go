// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Window represents a register block overlaying physical memory at a fixed
// base address.
//
// This is the only place where physical addresses are turned into pointers,
// it is only meaningful on bare metal (`GOOS=tamago`) where the peripheral
// window is identity mapped. Loads and stores are performed with sync/atomic
// 32-bit operations, which the compiler never elides, merges or reorders.
type Window struct {
	// Base is the physical base address of the register block
	Base uintptr
}

// Map returns a Window for the register block at base.
func Map(base uintptr) *Window {
	return &Window{Base: base}
}

func (w *Window) ptr(off uint32) *uint32 {
	// physical address, not Go managed memory
	return (*uint32)(unsafe.Pointer(w.Base + uintptr(off)))
}

// Read performs a 32-bit load of the register at offset off.
func (w *Window) Read(off uint32) uint32 {
	return atomic.LoadUint32(w.ptr(off))
}

// Write performs a 32-bit store of the register at offset off.
func (w *Window) Write(off uint32, val uint32) {
	atomic.StoreUint32(w.ptr(off), val)
}
