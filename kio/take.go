// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package kio

// Take represents a Reader returning at most a fixed number of bytes from an
// inner source over its whole lifetime.
type Take struct {
	inner Reader
	limit uint64
}

// TakeReader returns a Take reading at most limit bytes from inner.
func TakeReader(inner Reader, limit uint64) *Take {
	return &Take{
		inner: inner,
		limit: limit,
	}
}

// Limit returns the number of bytes which can still be read.
func (t *Take) Limit() uint64 {
	return t.limit
}

// Read implements Reader, once the limit is reached it returns 0 without
// reading from the inner source.
func (t *Take) Read(p []byte) (n int, err error) {
	if t.limit == 0 {
		return 0, nil
	}

	if uint64(len(p)) > t.limit {
		p = p[:t.limit]
	}

	n, err = t.inner.Read(p)

	if n < 0 || n > len(p) {
		return 0, OutOfBounds
	}

	t.limit -= uint64(n)

	return
}
