// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sim implements host emulation of the console peripherals, allowing
// the kernel and its drivers to run unmodified against simulated register
// files.
package sim

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/usbarmory/go-echo/mmio"
	"github.com/usbarmory/go-echo/soc/bcm2837"
)

// Clock is the emulated UART reference clock frequency.
const Clock = 48000000

// PL011 represents an emulated PL011 UART.
//
// Received characters are queued with Feed, transmitted characters are
// forwarded to the configured output only once the UART and its transmitter
// are enabled, otherwise they are dropped as they would never reach the line.
type PL011 struct {
	// Regs is the emulated register block, to be used as driver bus
	Regs *mmio.Sim

	mu      sync.Mutex
	rx      []byte
	closed  bool
	out     io.Writer
	dropped int

	notify chan struct{}
}

// NewPL011 returns an emulated PL011 UART transmitting to out.
func NewPL011(out io.Writer) (u *PL011) {
	u = &PL011{
		Regs:   mmio.NewSim("PL011"),
		out:    out,
		notify: make(chan struct{}, 1),
	}

	u.Regs.Hook(bcm2837.UART_FR, mmio.Hook{Read: u.flags})
	u.Regs.Hook(bcm2837.UART_DR, mmio.Hook{Read: u.pop, Write: u.push})

	return
}

func (u *PL011) wake() {
	select {
	case u.notify <- struct{}{}:
	default:
	}
}

func (u *PL011) flags() (fr uint32) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// the transmit side drains instantly
	fr |= 1 << bcm2837.FR_TXFE

	if len(u.rx) == 0 {
		fr |= 1 << bcm2837.FR_RXFE
	}

	return
}

func (u *PL011) pop() (c uint32) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.rx) == 0 {
		return
	}

	c = uint32(u.rx[0])
	u.rx = u.rx[1:]

	return
}

func (u *PL011) enabled() bool {
	cr := u.Regs.Peek(bcm2837.UART_CR)
	return bcm2837.CR_UARTEN.Get(cr) == 1 && bcm2837.CR_TXE.Get(cr) == 1
}

func (u *PL011) push(val uint32) {
	enabled := u.enabled()

	u.mu.Lock()
	defer u.mu.Unlock()

	if !enabled || u.out == nil {
		u.dropped++
		return
	}

	u.out.Write([]byte{byte(bcm2837.DR_DATA.Get(val))})
}

// SetOutput replaces the transmit line output, a nil writer drops all
// transmitted characters.
func (u *PL011) SetOutput(out io.Writer) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.out = out
}

// Dropped returns the number of characters transmitted while the line was
// not enabled or attached.
func (u *PL011) Dropped() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.dropped
}

// Feed queues received characters.
func (u *PL011) Feed(p []byte) {
	u.mu.Lock()
	u.rx = append(u.rx, p...)
	u.mu.Unlock()

	u.wake()
}

// Close marks the end of received data.
func (u *PL011) Close() {
	u.mu.Lock()
	u.closed = true
	u.mu.Unlock()

	u.wake()
}

// Pump feeds characters read from r until it is exhausted.
func (u *PL011) Pump(r io.Reader) error {
	buf := make([]byte, 512)

	for {
		n, err := r.Read(buf)

		if n > 0 {
			u.Feed(buf[:n])
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// Idle is meant to be used as driver spin hook, it blocks the polling
// goroutine until new characters are received.
//
// Once the received data is closed and drained the polling goroutine is
// terminated with runtime.Goexit, running its deferred calls.
func (u *PL011) Idle() {
	u.mu.Lock()
	pending := len(u.rx)
	done := u.closed && pending == 0
	u.mu.Unlock()

	switch {
	case done:
		runtime.Goexit()
	case pending > 0:
		return
	}

	<-u.notify
}

// Line returns a description of the programmed line settings.
func (u *PL011) Line() string {
	ibrd := u.Regs.Peek(bcm2837.UART_IBRD)
	fbrd := u.Regs.Peek(bcm2837.UART_FBRD)
	lcrh := u.Regs.Peek(bcm2837.UART_LCRH)

	if ibrd == 0 {
		return "unconfigured"
	}

	baud := Clock * 4 / (64*ibrd + fbrd)
	bits := 5 + bcm2837.LCRH_WLEN.Get(lcrh)

	fifo := "off"

	if bcm2837.LCRH_FEN.Get(lcrh) == 1 {
		fifo = "on"
	}

	return fmt.Sprintf("%d baud %dN1 fifo %s", baud, bits, fifo)
}
