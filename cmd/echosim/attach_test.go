// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/usbarmory/go-echo/sim"
	"github.com/usbarmory/go-echo/soc/bcm2837"
)

type conn struct {
	io.Reader
	io.Writer
}

func TestAttach(t *testing.T) {
	var out bytes.Buffer

	emu := sim.NewPL011(nil)
	uart := &bcm2837.PL011{
		Regs: emu.Regs,
		Spin: emu.Idle,
	}

	if err := uart.Init(); err != nil {
		t.Fatal(err)
	}

	iface := &Interface{
		Banner: "test",
		UART:   emu,
	}

	if err := iface.Attach(conn{strings.NewReader("a\rb\x03ignored"), &out}, true); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "\r\ntest\r\n") {
		t.Fatalf("unexpected banner %q", out.String())
	}

	buf := make([]byte, 3)
	uart.Read(buf)

	if string(buf) != "a\nb" {
		t.Fatalf("unexpected line input %q", buf)
	}

	uart.Write([]byte("x"))

	if emu.Dropped() != 1 {
		t.Fatal("line output still attached")
	}
}

func TestAttachBusy(t *testing.T) {
	var out bytes.Buffer

	iface := &Interface{
		UART: sim.NewPL011(nil),
	}

	iface.mu.Lock()
	defer iface.mu.Unlock()

	if err := iface.Attach(conn{strings.NewReader(""), &out}, false); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	if out.String() != ErrBusy.Error()+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

type brokenWriter struct{}

func (brokenWriter) Write(_ []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestAttachBusyWriteError(t *testing.T) {
	iface := &Interface{
		UART: sim.NewPL011(nil),
	}

	iface.mu.Lock()
	defer iface.mu.Unlock()

	err := iface.Attach(conn{strings.NewReader(""), brokenWriter{}}, false)

	if !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	if !strings.Contains(err.Error(), io.ErrClosedPipe.Error()) {
		t.Fatalf("write failure not reported, got %v", err)
	}
}

func TestLineWriter(t *testing.T) {
	var out bytes.Buffer

	w := &lineWriter{w: &out, raw: true}

	if n, err := w.Write([]byte("a\nb\n")); err != nil || n != 4 {
		t.Fatalf("unexpected write result %d, %v", n, err)
	}

	if out.String() != "a\r\nb\r\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	w.raw = false
	w.Write([]byte("a\n"))

	if out.String() != "a\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
