// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package bcm2837

import (
	"github.com/usbarmory/go-echo/mmio"
)

// PL011 UART registers
const (
	UART_DR   = 0x00
	UART_FR   = 0x18
	UART_IBRD = 0x24
	UART_FBRD = 0x28
	UART_LCRH = 0x2c
	UART_CR   = 0x30
	UART_ICR  = 0x44
)

// UART_FR bits
const (
	FR_TXFE = 7
	FR_TXFF = 5
	FR_RXFE = 4
	FR_BUSY = 3
)

// UART register fields
var (
	DR_DATA = mmio.Field{Pos: 0, Mask: 0xff}

	LCRH_WLEN = mmio.Field{Pos: 5, Mask: 0b11}
	LCRH_FEN  = mmio.Bit(4)

	CR_RXE    = mmio.Bit(9)
	CR_TXE    = mmio.Bit(8)
	CR_UARTEN = mmio.Bit(0)

	ICR_ALL = mmio.Field{Pos: 0, Mask: 0x7ff}
)

// LCRH_WLEN values
const (
	WLEN_5 = 0b00
	WLEN_6 = 0b01
	WLEN_7 = 0b10
	WLEN_8 = 0b11
)

// Baud rate divisors, resulting in 230400 baud with the 48 MHz UART reference
// clock set by the firmware.
const (
	IBRD = 13
	FBRD = 2
)

// PL011 represents a PL011 UART instance.
type PL011 struct {
	// Regs is the controller register block
	Regs mmio.Bus

	// Spin is invoked on every iteration of FIFO status polling,
	// mmio.Relax is used when nil.
	Spin func()
}

func (hw *PL011) reg(off uint32) mmio.Reg {
	return mmio.Reg{Bus: hw.Regs, Off: off}
}

func (hw *PL011) relax() {
	if hw.Spin != nil {
		hw.Spin()
		return
	}

	mmio.Relax()
}

// Name implements driver.Driver.
func (hw *PL011) Name() string {
	return "PL011Uart"
}

// Init implements driver.Driver, configuring the UART for 8N1 at the baud
// rate set by IBRD and FBRD with FIFOs enabled.
//
// Transmit and receive are only enabled once baud rate and line control are
// programmed.
func (hw *PL011) Init() error {
	if hw.Regs == nil {
		return ErrUnmapped
	}

	hw.reg(UART_CR).Set(0)
	hw.reg(UART_ICR).Write(ICR_ALL.Is(0x7ff))

	hw.reg(UART_IBRD).Set(IBRD)
	hw.reg(UART_FBRD).Set(FBRD)

	hw.reg(UART_LCRH).Write(LCRH_WLEN.Is(WLEN_8), LCRH_FEN.Is(1))
	hw.reg(UART_CR).Write(CR_UARTEN.Is(1), CR_TXE.Is(1), CR_RXE.Is(1))

	return nil
}

// Tx transmits a single character, waiting for room in the transmit FIFO.
func (hw *PL011) Tx(c byte) {
	fr := hw.reg(UART_FR)

	for fr.IsSet(FR_TXFF) {
		hw.relax()
	}

	hw.reg(UART_DR).Write(DR_DATA.Is(uint32(c)))
}

// Rx receives a single character, waiting for the receive FIFO to hold data.
func (hw *PL011) Rx() byte {
	fr := hw.reg(UART_FR)

	for fr.IsSet(FR_RXFE) {
		hw.relax()
	}

	return byte(hw.reg(UART_DR).Read(DR_DATA))
}

// Write transmits all of buf, blocking as long as required.
func (hw *PL011) Write(buf []byte) (n int, _ error) {
	for _, c := range buf {
		hw.Tx(c)
	}

	return len(buf), nil
}

// Read fills buf with received data, blocking as long as required.
func (hw *PL011) Read(buf []byte) (n int, _ error) {
	for i := range buf {
		buf[i] = hw.Rx()
	}

	return len(buf), nil
}

// Flush waits for the transmit FIFO to drain.
func (hw *PL011) Flush() {
	fr := hw.reg(UART_FR)

	for !fr.IsSet(FR_TXFE) || fr.IsSet(FR_BUSY) {
		hw.relax()
	}
}
