// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package rpi3 provides board support for the Raspberry Pi 3, wiring the
// BCM2837 GPIO and PL011 UART drivers into a serial console.
package rpi3

import (
	"github.com/usbarmory/go-echo/driver"
	"github.com/usbarmory/go-echo/kio"
	"github.com/usbarmory/go-echo/soc/bcm2837"
)

// Board represents a Raspberry Pi 3 board.
//
// Each peripheral driver instance is owned by the board, which must be
// created once at boot and never reconstructed.
type Board struct {
	GPIO  *bcm2837.GPIO
	UART0 *bcm2837.PL011

	drivers [2]driver.Driver
}

// New returns a board wiring the given GPIO controller and PL011 UART.
func New(gpio *bcm2837.GPIO, uart *bcm2837.PL011) *Board {
	return &Board{
		GPIO:    gpio,
		UART0:   uart,
		drivers: [2]driver.Driver{gpio, uart},
	}
}

// Drivers returns the board drivers in initialization order.
func (b *Board) Drivers() driver.Registry {
	return b.drivers[:]
}

// PostInit routes the UART signals to the header pins, it must be invoked
// after the UART is initialized so that no transient output reaches the line.
func (b *Board) PostInit() error {
	b.GPIO.MapPL011UART()
	return nil
}

// Console returns the serial console.
func (b *Board) Console() kio.Console {
	return b.UART0
}

// Name returns the board model.
func (b *Board) Name() string {
	return "Raspberry Pi 3"
}
