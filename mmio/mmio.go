// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mmio implements typed access to memory mapped peripheral register
// blocks.
//
// Registers are always accessed with 32-bit wide operations through a Bus,
// which is either a Window overlaying physical memory (hardware) or a Sim
// register file (tests and host simulation).
package mmio

import (
	"github.com/usbarmory/tamago/bits"
)

// Bus represents a peripheral register block addressed by byte offset.
type Bus interface {
	// Read performs a 32-bit read of the register at offset off.
	Read(off uint32) uint32
	// Write performs a 32-bit write of the register at offset off.
	Write(off uint32, val uint32)
}

// Field represents a bitfield within a 32-bit register.
type Field struct {
	// Pos is the position of the least significant bit
	Pos int
	// Mask is the unshifted field mask (e.g. 0b111 for a 3-bit field)
	Mask int
}

// Bit returns a single bit field at position pos.
func Bit(pos int) Field {
	return Field{Pos: pos, Mask: 1}
}

// Val returns val shifted into the field position.
func (f Field) Val(val uint32) (r uint32) {
	bits.SetN(&r, f.Pos, f.Mask, val)
	return
}

// Get extracts the field value from a register value.
func (f Field) Get(reg uint32) uint32 {
	return bits.Get(&reg, f.Pos, f.Mask)
}

// Replace returns reg with the field set to val, leaving other bits intact.
func (f Field) Replace(reg uint32, val uint32) uint32 {
	bits.SetN(&reg, f.Pos, f.Mask, val)
	return reg
}

// Value represents a field assignment.
type Value struct {
	Field Field
	Val   uint32
}

// Is returns the assignment of val to the field.
func (f Field) Is(val uint32) Value {
	return Value{Field: f, Val: val}
}

// Reg represents a single register slot within a Bus.
type Reg struct {
	Bus Bus
	Off uint32
}

// Get returns the register value.
func (r Reg) Get() uint32 {
	return r.Bus.Read(r.Off)
}

// Set writes the register value.
func (r Reg) Set(val uint32) {
	r.Bus.Write(r.Off, val)
}

// IsSet returns whether the bit at position pos is set.
func (r Reg) IsSet(pos int) bool {
	val := r.Get()
	return bits.IsSet(&val, pos)
}

// Read returns the value of field f.
func (r Reg) Read(f Field) uint32 {
	return f.Get(r.Get())
}

// Modify performs a read-modify-write cycle updating the fields in vals,
// issuing a single register write.
func (r Reg) Modify(vals ...Value) {
	val := r.Get()

	for _, v := range vals {
		val = v.Field.Replace(val, v.Val)
	}

	r.Set(val)
}

// Write sets the fields in vals with a single register write, all other bits
// are written as zero.
func (r Reg) Write(vals ...Value) {
	var val uint32

	for _, v := range vals {
		val |= v.Field.Val(v.Val)
	}

	r.Set(val)
}
