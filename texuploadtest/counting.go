// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texuploadtest

import (
	"github.com/YindSoft/texupload"
)

// CountingBuffer wraps a PixelBuffer and counts acquired and released views.
type CountingBuffer struct {
	texupload.PixelBuffer

	// AcquireErr, when set, is returned by Acquire instead of a view.
	AcquireErr error

	Acquired int
	Released int
}

// Counting wraps buf.
func Counting(buf texupload.PixelBuffer) *CountingBuffer {
	return &CountingBuffer{PixelBuffer: buf}
}

func (c *CountingBuffer) Acquire() (texupload.View, error) {
	if c.AcquireErr != nil {
		return texupload.View{}, c.AcquireErr
	}
	v, err := c.PixelBuffer.Acquire()
	if err != nil {
		return v, err
	}
	c.Acquired++
	return texupload.NewView(v.Ptr, v.Len, func() {
		v.Release()
		c.Released++
	}), nil
}

// Balanced reports whether every acquired view was released.
func (c *CountingBuffer) Balanced() bool {
	return c.Acquired == c.Released
}
