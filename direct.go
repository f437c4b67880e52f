// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"errors"
	"fmt"
	"unsafe"
)

// DirectBuffer is a block of memory outside the Go heap. Its address never
// moves, so it can be handed to native code as a Direct buffer without
// pinning or copying. The caller must Free it.
type DirectBuffer struct {
	mem []byte
}

// AllocDirect maps n bytes of zeroed, page-backed memory.
func AllocDirect(n int) (*DirectBuffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("texupload: direct buffer size %d", n)
	}
	mem, err := allocDirect(n)
	if err != nil {
		return nil, fmt.Errorf("texupload: allocating direct buffer: %w", err)
	}
	return &DirectBuffer{mem: mem}, nil
}

// Bytes returns the buffer contents for writing. The slice is invalid after Free.
func (d *DirectBuffer) Bytes() []byte {
	return d.mem
}

// Direct returns a PixelBuffer over the whole buffer.
func (d *DirectBuffer) Direct() Direct {
	if len(d.mem) == 0 {
		return Direct{}
	}
	return NewDirect(unsafe.Pointer(&d.mem[0]), len(d.mem))
}

// Free unmaps the buffer. Calling Free twice returns an error.
func (d *DirectBuffer) Free() error {
	if d.mem == nil {
		return errors.New("texupload: direct buffer already freed")
	}
	err := freeDirect(d.mem)
	d.mem = nil
	return err
}
