// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command echosim boots the Raspberry Pi 3 echo kernel against emulated
// peripherals, attaching the emulated serial line to the host terminal or to
// SSH sessions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/hako/durafmt"

	"github.com/usbarmory/go-echo/board/rpi3"
	"github.com/usbarmory/go-echo/kernel"
	"github.com/usbarmory/go-echo/mmio"
	"github.com/usbarmory/go-echo/sim"
	"github.com/usbarmory/go-echo/soc/bcm2837"
)

// Build information, set at link time
var (
	Revision string
	Build    string
)

var (
	sshAddr   = flag.String("ssh", "", "serve the serial line over SSH at `address` instead of stdio")
	hostKey   = flag.String("hostkey", "", "SSH host key `file` (generated when empty)")
	debugAddr = flag.String("debug", "", "serve runtime statistics over HTTP at `address`")
	verbose   = flag.Bool("v", false, "log boot diagnostics to stderr")
)

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func main() {
	flag.Parse()

	start := time.Now()

	emu := sim.NewPL011(nil)
	emu.Regs.NoTrace = true

	gpioRegs := mmio.NewSim("GPIO")
	gpioRegs.NoTrace = true

	gpio := &bcm2837.GPIO{
		Regs: gpioRegs,
	}

	uart := &bcm2837.PL011{
		Regs: emu.Regs,
		Spin: emu.Idle,
	}

	board := rpi3.New(gpio, uart)

	k := &kernel.Kernel{
		Board: board,
	}

	if *verbose {
		k.Log = log.Default()
	}

	console := &Interface{
		Banner: fmt.Sprintf("go-echo • %s (emulated) • %s/%s (%s) %s %s",
			board.Name(), runtime.GOOS, runtime.GOARCH, runtime.Version(), Revision, Build),
		UART: emu,
	}

	if len(*debugAddr) > 0 {
		go serveDebug(*debugAddr)
	}

	done := make(chan error, 1)

	go func() {
		defer close(done)
		done <- k.Boot()
	}()

	if len(*sshAddr) > 0 {
		go func() {
			if err := serveSSH(console, *sshAddr, *hostKey); err != nil {
				log.Fatalf("ssh server error, %v", err)
			}
		}()
	} else {
		go func() {
			if err := console.Stdio(); err != nil {
				log.Printf("console error, %v", err)
			}
		}()
	}

	if err := <-done; err != nil {
		log.Printf("boot failed, %v", err)
	}

	console.Restore()

	log.Printf("\nline %s, session lasted %s", emu.Line(), durafmt.Parse(time.Since(start)).LimitFirstN(2))
}
