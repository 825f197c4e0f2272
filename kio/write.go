// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package kio

import (
	"fmt"
)

// WriteAll writes all of p to w.
//
// The write fails with EndOfFile as soon as w reports no progress before p is
// drained. Any failure, including w errors, is returned through conv.
func WriteAll[E error](w Writer, p []byte, conv func(error) E) error {
	for len(p) > 0 {
		n, err := w.Write(p)

		if n < 0 || n > len(p) {
			return conv(OutOfBounds)
		}

		if err != nil {
			return conv(err)
		}

		if n == 0 {
			return conv(EndOfFile)
		}

		p = p[n:]
	}

	return nil
}

// fmtShim forwards formatted output to a Writer with WriteAll, retaining the
// first I/O failure instead of the bare error seen by the formatter.
type fmtShim[E error] struct {
	w    Writer
	conv func(error) E
	err  error
}

func (s *fmtShim[E]) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	if err := WriteAll(s.w, p, s.conv); err != nil {
		s.err = err
		return 0, FormatError
	}

	return len(p), nil
}

// Fprintf formats according to a format specifier and writes the result to w
// with WriteAll.
//
// An I/O error captured while writing takes precedence over the formatter
// failure it causes. A formatter failure without an underlying I/O error is
// reported as FormatError, converted through conv.
func Fprintf[E error](w Writer, conv func(error) E, format string, a ...any) error {
	s := &fmtShim[E]{
		w:    w,
		conv: conv,
	}

	if _, err := fmt.Fprintf(s, format, a...); err != nil {
		if s.err != nil {
			return s.err
		}

		return conv(FormatError)
	}

	return nil
}

// Printf is Fprintf with failures unified as *Error.
func Printf(w Writer, format string, a ...any) error {
	return Fprintf(w, Unify, format, a...)
}
