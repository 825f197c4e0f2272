// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm

package main

import (
	"runtime"

	"github.com/usbarmory/tamago/arm"
	_ "github.com/usbarmory/tamago/board/raspberrypi/pi2"
	"github.com/usbarmory/tamago/soc/bcm2835"

	"github.com/usbarmory/go-echo/board/rpi3"
	"github.com/usbarmory/go-echo/kernel"
	"github.com/usbarmory/go-echo/mmio"
	"github.com/usbarmory/go-echo/soc/bcm2837"
)

// The BCM2837 shares the BCM2835 peripheral layout behind the Pi 2+ remapped
// base, early runtime setup (CPU, MMU, system timer, RNG, memory layout) is
// performed by the pi2 board package.

// Peripheral instances, each register block has exactly one driver instance
// for the lifetime of the program.
var (
	// GPIO controller
	GPIO = &bcm2837.GPIO{
		Regs:  mmio.Map(bcm2837.GPIO_BASE),
		Delay: busyloop,
	}

	// Serial port
	UART0 = &bcm2837.PL011{
		Regs: mmio.Map(bcm2837.UART0_BASE),
	}

	// Board wiring, injected into the kernel at boot
	Board = rpi3.New(GPIO, UART0)
)

func busyloop(cycles int) {
	arm.Busyloop(uint32(cycles))
}

func init() {
	if bcm2835.PeripheralAddress(0) != bcm2837.MMIO_BASE {
		panic("unexpected peripheral base")
	}

	runtime.Exit = func(_ int32) {
		kernel.Halt()
	}
}
