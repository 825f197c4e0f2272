// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package kio

import (
	"errors"
	"io"
)

// ReadExact reads exactly len(p) bytes from r.
//
// The read fails with EndOfFile as soon as r reports no progress before p is
// full. Any failure, including r errors, is returned through conv.
func ReadExact[E error](r Reader, p []byte, conv func(error) E) error {
	for len(p) > 0 {
		n, err := r.Read(p)

		switch {
		case n < 0 || n > len(p):
			return conv(OutOfBounds)
		case exhausted(n, err):
			return conv(EndOfFile)
		}

		p = p[n:]

		if err != nil && !errors.Is(err, io.EOF) {
			return conv(err)
		}
	}

	return nil
}

// ReadFull reads exactly len(p) bytes from r, failures are unified as *Error.
func ReadFull(r Reader, p []byte) error {
	return ReadExact(r, p, Unify)
}
