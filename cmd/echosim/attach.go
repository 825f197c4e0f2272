// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/usbarmory/go-echo/kio"
	"github.com/usbarmory/go-echo/sim"
)

// raw mode control characters ending an attachment
const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// ErrBusy is returned when attaching to a line already in use.
var ErrBusy = errors.New("serial line in use")

// Interface represents the attachment point of the emulated serial line.
type Interface struct {
	// Banner represents the welcome message
	Banner string

	// UART represents the emulated serial port
	UART *sim.PL011

	// line attachment lock
	mu sync.Mutex

	termMu sync.Mutex
	fd     int
	state  *term.State
}

// lineReader translates terminal input to the line discipline expected by
// the kernel, raw terminals send CR on Enter.
type lineReader struct {
	r   io.Reader
	raw bool
}

func (l *lineReader) Read(p []byte) (n int, err error) {
	if n, err = l.r.Read(p); !l.raw {
		return
	}

	for i, c := range p[:n] {
		switch c {
		case '\r':
			p[i] = '\n'
		case ctrlC, ctrlD:
			return i, io.EOF
		}
	}

	return
}

// lineWriter translates LF to CRLF for raw terminals.
type lineWriter struct {
	w   io.Writer
	raw bool
}

func (l *lineWriter) Write(p []byte) (n int, err error) {
	if !l.raw {
		return l.w.Write(p)
	}

	if _, err = l.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return
	}

	return len(p), nil
}

// Attach connects rw to the serial line until rw input is exhausted.
//
// Only one attachment is allowed at any given time, the line output is
// detached on return.
func (iface *Interface) Attach(rw io.ReadWriter, raw bool) (err error) {
	if !iface.mu.TryLock() {
		if err = kio.Printf(rw, "%v\n", ErrBusy); err != nil {
			return fmt.Errorf("%w, %v", ErrBusy, err)
		}

		return ErrBusy
	}
	defer iface.mu.Unlock()

	w := &lineWriter{w: rw, raw: raw}

	if err = kio.Printf(w, "\n%s\n\npress Enter to start\n\n", iface.Banner); err != nil {
		return
	}

	iface.UART.SetOutput(w)
	defer iface.UART.SetOutput(nil)

	return iface.UART.Pump(&lineReader{r: rw, raw: raw})
}

// Stdio attaches the process standard input and output to the serial line,
// switching the terminal to raw mode when possible. The received data is
// closed once standard input is exhausted.
func (iface *Interface) Stdio() (err error) {
	fd := int(os.Stdin.Fd())
	raw := term.IsTerminal(fd)

	if raw {
		state, err := term.MakeRaw(fd)

		if err != nil {
			return err
		}

		iface.termMu.Lock()
		iface.fd = fd
		iface.state = state
		iface.termMu.Unlock()
	}

	defer iface.UART.Close()

	return iface.Attach(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, raw)
}

// Restore returns the terminal to its original state, if changed.
func (iface *Interface) Restore() {
	iface.termMu.Lock()
	defer iface.termMu.Unlock()

	if iface.state != nil {
		term.Restore(iface.fd, iface.state)
	}
}
