// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"runtime"
	"unsafe"
)

// PixelBuffer is a caller-owned block of tightly packed RGBA pixels.
// The uploader borrows it through Acquire and releases the view before
// returning; it never keeps the address.
type PixelBuffer interface {
	// Len returns the size of the buffer in bytes.
	Len() int
	// Acquire returns a read-only contiguous view of the bytes. The view
	// must be released exactly once.
	Acquire() (View, error)
}

// View is a temporary native-addressable view over a PixelBuffer.
type View struct {
	Ptr unsafe.Pointer
	Len int

	release func()
}

// NewView returns a view over n bytes at ptr. release, if non-nil, runs on Release.
func NewView(ptr unsafe.Pointer, n int, release func()) View {
	return View{Ptr: ptr, Len: n, release: release}
}

// Release ends the borrow.
func (v View) Release() {
	if v.release != nil {
		v.release()
	}
}

// Bytes is a pixel buffer backed by Go memory. Acquire pins the backing
// array so the address stays valid while native code reads it, and Release
// unpins it without writing anything back.
type Bytes []byte

func (b Bytes) Len() int { return len(b) }

func (b Bytes) Acquire() (View, error) {
	if len(b) == 0 {
		return View{}, nil
	}
	p := &b[0]
	var pinner runtime.Pinner
	pinner.Pin(p)
	return NewView(unsafe.Pointer(p), len(b), pinner.Unpin), nil
}

// Direct is a pixel buffer in memory that native code addresses directly,
// such as a DirectBuffer or memory owned by a native library. Acquire hands
// out the address without copying and Release does nothing.
type Direct struct {
	ptr unsafe.Pointer
	n   int
}

// NewDirect wraps n bytes at ptr. The memory must stay valid for as long as
// the Direct is used. A nil ptr yields an empty buffer.
func NewDirect(ptr unsafe.Pointer, n int) Direct {
	if ptr == nil || n < 0 {
		return Direct{}
	}
	return Direct{ptr: ptr, n: n}
}

func (d Direct) Len() int { return d.n }

func (d Direct) Acquire() (View, error) {
	return NewView(d.ptr, d.n, nil), nil
}
