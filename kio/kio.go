// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package kio implements the byte stream capabilities used by the kernel and
// its drivers, along with composition adapters.
//
// Reader and Writer share their method sets with io.Reader and io.Writer,
// however a zero byte count (optionally paired with io.EOF) signals that a
// source has no more data to offer right now, it is up to adapters and
// callers to decide whether that is permanent.
//
// Helpers that can fail on behalf of lower level sources are generic over the
// caller error type, every failure is passed through a conversion function
// supplied by the call site so that peripheral errors and the EndOfFile marker
// end up in a single representation of the caller's choice.
package kio

import (
	"errors"
	"fmt"
	"io"
)

// Reader represents a byte source.
type Reader interface {
	Read(p []byte) (n int, err error)
}

// Writer represents a byte sink.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Console represents a device which is both a Reader and a Writer.
type Console interface {
	Reader
	Writer
}

// Kind represents a zero payload error marker.
type Kind int

// Error markers
const (
	// EndOfFile is raised when a source or sink reports no progress while
	// more bytes were required.
	EndOfFile Kind = iota + 1
	// OutOfBounds is raised when an access exceeds a buffer or limit.
	OutOfBounds
	// FormatError is raised when formatted output fails without an
	// underlying I/O error.
	FormatError
	// Device tags errors raised by peripheral drivers.
	Device
)

func (k Kind) Error() string {
	switch k {
	case EndOfFile:
		return "end of file"
	case OutOfBounds:
		return "out of bounds"
	case FormatError:
		return "format error"
	case Device:
		return "device error"
	default:
		return fmt.Sprintf("kio error %d", int(k))
	}
}

// Error represents the default unified error type, tagging an optional cause
// with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil || e.Err == error(e.Kind) {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s, %v", e.Kind, e.Err)
}

// Unwrap returns the error cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Unify converts any error into an *Error, it is the default conversion for
// the generic helpers of this package.
//
// Errors already unified are returned as is, markers are tagged with their own
// kind, io.EOF is tagged as EndOfFile, anything else is a device error.
func Unify(err error) *Error {
	var e *Error
	var k Kind

	switch {
	case errors.As(err, &e):
		return e
	case errors.Is(err, io.EOF):
		return &Error{Kind: EndOfFile, Err: err}
	case errors.As(err, &k):
		return &Error{Kind: k, Err: err}
	default:
		return &Error{Kind: Device, Err: err}
	}
}

// Pass is the identity conversion, leaving errors in their native form.
func Pass(err error) error {
	return err
}

// exhausted reports whether a read result signals a source with no more data.
func exhausted(n int, err error) bool {
	return n == 0 && (err == nil || errors.Is(err, io.EOF))
}
