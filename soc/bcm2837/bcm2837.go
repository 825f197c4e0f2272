// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package bcm2837 implements drivers for the Broadcom BCM2837 peripherals
// used by the serial console (GPIO pin muxing and PL011 UART),
// following the reference at:
//
//	https://github.com/raspberrypi/documentation/files/1888662/BCM2837-ARM-Peripherals.-.Revised.-.V2-1.pdf
//
// Drivers access registers through an mmio.Bus, on hardware this is an
// mmio.Window onto the addresses below.
package bcm2837

import (
	"errors"
)

// Peripheral base addresses (ARM physical)
const (
	MMIO_BASE = 0x3f000000

	GPIO_BASE  = MMIO_BASE + 0x200000
	UART0_BASE = MMIO_BASE + 0x201000
)

// ErrUnmapped is returned by drivers without a register block.
var ErrUnmapped = errors.New("register block not mapped")
