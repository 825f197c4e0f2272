// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package rpi3

import (
	"strings"
	"testing"

	"github.com/usbarmory/go-echo/mmio"
	"github.com/usbarmory/go-echo/soc/bcm2837"
)

func TestDrivers(t *testing.T) {
	b := New(&bcm2837.GPIO{}, &bcm2837.PL011{})

	if names := strings.Join(b.Drivers().Names(), ","); names != "GPIO,PL011Uart" {
		t.Fatalf("unexpected driver order %s", names)
	}

	if b.Console() != b.UART0 {
		t.Fatal("console is not backed by UART0")
	}
}

func TestPostInit(t *testing.T) {
	regs := mmio.NewSim("GPIO")
	b := New(&bcm2837.GPIO{Regs: regs, Delay: regs.Delay}, &bcm2837.PL011{})

	if err := b.PostInit(); err != nil {
		t.Fatal(err)
	}

	if v := b.GPIO.Function(14); v != bcm2837.FSEL_ALT0 {
		t.Fatalf("TXD0 not muxed, function %#b", v)
	}

	if v := b.GPIO.Function(15); v != bcm2837.FSEL_ALT0 {
		t.Fatalf("RXD0 not muxed, function %#b", v)
	}

	if v := regs.Peek(bcm2837.GPPUDCLK0); v != 0 {
		t.Fatalf("pull-up/down clock left asserted (%#x)", v)
	}
}
