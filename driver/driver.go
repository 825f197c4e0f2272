// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package driver defines the lifecycle contract implemented by peripheral
// drivers and the ordered registry used to bring them up at boot.
package driver

import (
	"fmt"
	"log"
)

// Driver represents a peripheral driver.
type Driver interface {
	// Init performs one-time hardware bring-up, it must be invoked exactly
	// once per boot.
	Init() error
	// Name returns a stable identifier used for diagnostics.
	Name() string
}

// NoInit can be embedded by drivers which have nothing to configure at boot,
// its Init method succeeds trivially.
type NoInit struct{}

// Init implements Driver.
func (NoInit) Init() error {
	return nil
}

// InitError represents a driver initialization failure.
type InitError struct {
	// Name is the failing driver name
	Name string
	// Err is the failure cause
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to load driver: %s, %v", e.Name, e.Err)
}

// Unwrap returns the failure cause.
func (e *InitError) Unwrap() error {
	return e.Err
}

// Registry represents a fixed, ordered list of drivers.
type Registry []Driver

// Init initializes all drivers in registry order, stopping at the first
// failure.
func (r Registry) Init(l *log.Logger) error {
	for _, d := range r {
		if l != nil {
			l.Printf("initializing %s", d.Name())
		}

		if err := d.Init(); err != nil {
			return &InitError{
				Name: d.Name(),
				Err:  err,
			}
		}
	}

	return nil
}

// Names returns the driver names in registry order.
func (r Registry) Names() (names []string) {
	for _, d := range r {
		names = append(names, d.Name())
	}

	return
}
