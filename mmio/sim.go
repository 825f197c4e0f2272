// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

import (
	"fmt"
	"sync"
)

// Op represents a register file access kind.
type Op int

// Register file access kinds
const (
	OpRead Op = iota
	OpWrite
	OpDelay
)

func (op Op) String() string {
	switch op {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpDelay:
		return "delay"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Access represents an entry of a Sim access trace.
type Access struct {
	Op  Op
	Off uint32
	// Val is the value read or written, or the cycle count for OpDelay.
	Val uint32
}

func (a Access) String() string {
	if a.Op == OpDelay {
		return fmt.Sprintf("delay %d", a.Val)
	}

	return fmt.Sprintf("%s %#02x %#08x", a.Op, a.Off, a.Val)
}

// Hook represents device behaviour attached to a single register offset of a
// Sim register file. Either function can be nil, in which case the access
// falls back to plain storage.
type Hook struct {
	Read  func() uint32
	Write func(val uint32)
}

// Sim represents a simulated register block. It records every access in an
// ordered trace, making register sequencing observable.
//
// A Sim is safe for concurrent use, hooks are invoked without holding the
// register file lock.
type Sim struct {
	mu sync.Mutex

	// Name is used for diagnostics
	Name string

	regs  map[uint32]uint32
	hooks map[uint32]Hook
	trace []Access

	// NoTrace disables access recording, to bound memory use when
	// simulating long running sessions.
	NoTrace bool
}

// NewSim returns an empty simulated register block.
func NewSim(name string) *Sim {
	return &Sim{
		Name:  name,
		regs:  make(map[uint32]uint32),
		hooks: make(map[uint32]Hook),
	}
}

func (s *Sim) record(a Access) {
	if !s.NoTrace {
		s.trace = append(s.trace, a)
	}
}

// Hook attaches device behaviour to the register at offset off.
func (s *Sim) Hook(off uint32, h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hooks[off] = h
}

// Read implements Bus.
func (s *Sim) Read(off uint32) (val uint32) {
	s.mu.Lock()
	h := s.hooks[off]
	val = s.regs[off]
	s.mu.Unlock()

	if h.Read != nil {
		val = h.Read()
	}

	s.mu.Lock()
	s.record(Access{Op: OpRead, Off: off, Val: val})
	s.mu.Unlock()

	return
}

// Write implements Bus.
func (s *Sim) Write(off uint32, val uint32) {
	s.mu.Lock()
	h := s.hooks[off]
	s.regs[off] = val
	s.record(Access{Op: OpWrite, Off: off, Val: val})
	s.mu.Unlock()

	if h.Write != nil {
		h.Write(val)
	}
}

// Delay records a busy wait of the given number of cycles, it is meant to
// replace Spin on drivers bound to a Sim.
func (s *Sim) Delay(cycles int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(Access{Op: OpDelay, Val: uint32(cycles)})
}

// Peek returns the last value written at offset off without recording an
// access.
func (s *Sim) Peek(off uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.regs[off]
}

// Poke stores a register value without recording an access or invoking
// hooks, it is used to set up reset state.
func (s *Sim) Poke(off uint32, val uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regs[off] = val
}

// Trace returns a copy of the recorded accesses.
func (s *Sim) Trace() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Access(nil), s.trace...)
}

// Writes returns the recorded writes and delays, omitting reads.
func (s *Sim) Writes() (t []Access) {
	for _, a := range s.Trace() {
		if a.Op != OpRead {
			t = append(t, a)
		}
	}

	return
}

// Reset clears the recorded trace.
func (s *Sim) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trace = nil
}
