// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package kio

import (
	"errors"
	"io"
)

// Chain represents a Reader which drains a first source, then permanently
// switches to a second one.
//
// Errors from either source are converted to the chain error type E.
type Chain[E error] struct {
	first  Reader
	second Reader

	doneFirst bool
	conv      func(error) E
}

// ChainWith returns a Chain of first and second converting failures with
// conv.
func ChainWith[E error](first Reader, second Reader, conv func(error) E) *Chain[E] {
	return &Chain[E]{
		first:  first,
		second: second,
		conv:   conv,
	}
}

// ChainReaders returns a Chain of first and second with errors left in their
// native form.
func ChainReaders(first Reader, second Reader) *Chain[error] {
	return ChainWith(first, second, Pass)
}

// Read implements Reader.
func (c *Chain[E]) Read(p []byte) (n int, err error) {
	if !c.doneFirst {
		n, err = c.first.Read(p)

		if !exhausted(n, err) {
			return n, c.convert(err)
		}

		c.doneFirst = true
	}

	n, err = c.second.Read(p)

	return n, c.convert(err)
}

// convert applies the chain conversion to source failures, end of data
// signals are left untouched.
func (c *Chain[E]) convert(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		if c.doneFirst {
			return err
		}

		return nil
	default:
		return c.conv(err)
	}
}
