// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package driver

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

type testDriver struct {
	name  string
	order *[]string
}

func (d *testDriver) Init() error {
	*d.order = append(*d.order, d.name)
	return nil
}

func (d *testDriver) Name() string {
	return d.name
}

type idleDriver struct {
	NoInit
}

func (idleDriver) Name() string {
	return "IDLE"
}

type failingDriver struct {
	err error
}

func (d *failingDriver) Init() error {
	return d.err
}

func (d *failingDriver) Name() string {
	return "FAULTY"
}

func TestRegistryInit(t *testing.T) {
	var order []string
	var buf bytes.Buffer

	r := Registry{
		&testDriver{name: "GPIO", order: &order},
		idleDriver{},
		&testDriver{name: "PL011Uart", order: &order},
	}

	if err := r.Init(log.New(&buf, "", 0)); err != nil {
		t.Fatal(err)
	}

	if strings.Join(order, ",") != "GPIO,PL011Uart" {
		t.Fatalf("unexpected init order %v", order)
	}

	if buf.String() != "initializing GPIO\ninitializing IDLE\ninitializing PL011Uart\n" {
		t.Fatalf("unexpected log %q", buf.String())
	}
}

func TestRegistryInitFailure(t *testing.T) {
	var order []string

	errFault := errors.New("fault")

	r := Registry{
		&testDriver{name: "GPIO", order: &order},
		&failingDriver{err: errFault},
		&testDriver{name: "PL011Uart", order: &order},
	}

	err := r.Init(nil)

	var ie *InitError

	if !errors.As(err, &ie) {
		t.Fatalf("expected InitError, got %v", err)
	}

	if ie.Name != "FAULTY" || !errors.Is(err, errFault) {
		t.Fatalf("unexpected failure %v", err)
	}

	if strings.Join(order, ",") != "GPIO" {
		t.Fatalf("drivers initialized after failure: %v", order)
	}

	if !strings.Contains(err.Error(), "FAULTY") {
		t.Fatalf("driver name missing from diagnostic %q", err.Error())
	}
}

func TestRegistryNames(t *testing.T) {
	var order []string

	r := Registry{
		&failingDriver{},
		&testDriver{name: "GPIO", order: &order},
	}

	if n := strings.Join(r.Names(), ","); n != "FAULTY,GPIO" {
		t.Fatalf("unexpected names %s", n)
	}
}
