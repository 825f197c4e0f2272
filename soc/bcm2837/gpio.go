// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package bcm2837

import (
	"github.com/usbarmory/go-echo/mmio"
)

// GPIO registers
const (
	GPFSEL0 = 0x00
	GPFSEL1 = 0x04
	GPFSEL2 = 0x08
	GPFSEL3 = 0x0c
	GPFSEL4 = 0x10
	GPFSEL5 = 0x14

	// Pull-up/down control
	GPPUD = 0x94
	// Pull-up/down clock, pins 0-31
	GPPUDCLK0 = 0x98
	// Pull-up/down clock, pins 32-53
	GPPUDCLK1 = 0x9c
)

// GPIO function select values
const (
	FSEL_INPUT  = 0b000
	FSEL_OUTPUT = 0b001
	FSEL_ALT0   = 0b100
	FSEL_ALT1   = 0b101
	FSEL_ALT2   = 0b110
	FSEL_ALT3   = 0b111
	FSEL_ALT4   = 0b011
	FSEL_ALT5   = 0b010
)

// GPFSEL1 fields
var (
	// Pin 14, PL011 TXD0 on ALT0
	FSEL14 = mmio.Field{Pos: 12, Mask: 0b111}
	// Pin 15, PL011 RXD0 on ALT0
	FSEL15 = mmio.Field{Pos: 15, Mask: 0b111}
)

// GPPUDCLK0 fields
var (
	PUDCLK14 = mmio.Bit(14)
	PUDCLK15 = mmio.Bit(15)
)

// PullSettle is the number of cycles required by the pull-up/down latch
// between control line and clock changes.
const PullSettle = 150

// GPIO represents the GPIO controller instance.
type GPIO struct {
	// Regs is the controller register block
	Regs mmio.Bus

	// Delay busy waits for the given number of cycles, mmio.Spin is used
	// when nil.
	Delay func(cycles int)
}

func (hw *GPIO) reg(off uint32) mmio.Reg {
	return mmio.Reg{Bus: hw.Regs, Off: off}
}

func (hw *GPIO) delay(cycles int) {
	if hw.Delay != nil {
		hw.Delay(cycles)
		return
	}

	mmio.Spin(cycles)
}

// Name implements driver.Driver.
func (hw *GPIO) Name() string {
	return "GPIO"
}

// Init implements driver.Driver, pins are left in their reset configuration.
func (hw *GPIO) Init() error {
	if hw.Regs == nil {
		return ErrUnmapped
	}

	return nil
}

// Function returns the function select value of a pin.
func (hw *GPIO) Function(pin int) uint32 {
	off := uint32(GPFSEL0 + 4*(pin/10))
	f := mmio.Field{Pos: (pin % 10) * 3, Mask: 0b111}

	return hw.reg(off).Read(f)
}

// MapPL011UART routes the PL011 UART signals to pins 14 (TX) and 15 (RX) and
// disables their pull-up/down resistors.
//
// The pull-up/down latch requires the control register to settle before the
// clock is asserted and the clock to be held before removal, the sequence and
// delays must not be altered.
func (hw *GPIO) MapPL011UART() {
	hw.reg(GPFSEL1).Modify(FSEL14.Is(FSEL_ALT0), FSEL15.Is(FSEL_ALT0))

	hw.reg(GPPUD).Set(0)
	hw.delay(PullSettle)

	hw.reg(GPPUDCLK0).Write(PUDCLK14.Is(1), PUDCLK15.Is(1))
	hw.delay(PullSettle)

	hw.reg(GPPUDCLK0).Set(0)
}
