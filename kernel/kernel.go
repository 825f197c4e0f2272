// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package kernel implements the boot sequence: driver initialization, board
// post-initialization and the console echo service.
package kernel

import (
	"fmt"
	"io"
	"log"

	"github.com/usbarmory/go-echo/driver"
	"github.com/usbarmory/go-echo/kio"
	"github.com/usbarmory/go-echo/mmio"
)

// Board represents the board support required to boot.
type Board interface {
	// Drivers returns the peripheral drivers in initialization order.
	Drivers() driver.Registry
	// PostInit performs board wiring which requires initialized drivers.
	PostInit() error
	// Console returns the device used by the echo service.
	Console() kio.Console
}

// State represents a boot stage.
type State int

// Boot stages
const (
	Reset State = iota
	DriversInit
	BoardPostInit
	MainLoop
)

func (s State) String() string {
	switch s {
	case Reset:
		return "reset"
	case DriversInit:
		return "drivers init"
	case BoardPostInit:
		return "board post-init"
	case MainLoop:
		return "main loop"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Kernel represents a kernel instance bound to a board.
type Kernel struct {
	// Board is the board to boot
	Board Board
	// Log receives boot diagnostics, nothing is logged when nil
	Log *log.Logger

	state State
}

// Boot boots the board with the default logger, it returns only on failure.
func Boot(b Board) error {
	k := &Kernel{
		Board: b,
		Log:   log.Default(),
	}

	return k.Boot()
}

// Halt stops execution forever.
func Halt() {
	for {
		mmio.Relax()
	}
}

func (k *Kernel) logger() *log.Logger {
	if k.Log == nil {
		return log.New(io.Discard, "", 0)
	}

	return k.Log
}

func (k *Kernel) enter(s State) {
	k.state = s
	k.logger().Printf("entering %s", s)
}

// State returns the current boot stage.
func (k *Kernel) State() State {
	return k.state
}

// Boot initializes all board drivers, invokes board post-initialization and
// enters the echo service.
//
// Driver and post-initialization failures are fatal and returned before any
// further stage runs. On hardware the echo service never returns, with
// emulated consoles a console failure terminates it and is returned.
func (k *Kernel) Boot() (err error) {
	l := k.logger()

	k.enter(DriversInit)

	if err = k.Board.Drivers().Init(l); err != nil {
		return
	}

	k.enter(BoardPostInit)

	if err = k.Board.PostInit(); err != nil {
		return fmt.Errorf("board post-init failed, %w", err)
	}

	k.enter(MainLoop)

	return echo(k.Board.Console())
}

// echo discards console input up to the first newline, then echoes every
// received byte.
func echo(c kio.Console) error {
	data := make([]byte, 1)

	for {
		if err := kio.ReadExact(c, data, kio.Unify); err != nil {
			return fmt.Errorf("console read, %w", err)
		}

		if data[0] == '\n' {
			break
		}
	}

	for {
		if err := kio.ReadExact(c, data, kio.Unify); err != nil {
			return fmt.Errorf("console read, %w", err)
		}

		if err := kio.WriteAll(c, data, kio.Unify); err != nil {
			return fmt.Errorf("console write, %w", err)
		}
	}
}
