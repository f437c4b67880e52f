// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package texuploadtest provides a recording graphics context and a pixel
// buffer wrapper that counts acquisitions, for testing code that uploads
// textures.
package texuploadtest

import (
	"unsafe"

	"github.com/YindSoft/texupload"
)

// Call is one recorded TexImage2D invocation. Pixels is a copy of the bytes
// that were readable at the given pointer during the call.
type Call struct {
	Target         uint32
	Level          int32
	InternalFormat int32
	Width          int32
	Height         int32
	Border         int32
	Format         uint32
	Type           uint32
	Pixels         []byte
}

// Recorder is a texupload.GraphicsContext that records calls instead of
// talking to a driver.
type Recorder struct {
	// NoContext makes IsCurrent report false.
	NoContext bool
	// Fail is reported by GetError after every TexImage2D when non-zero.
	Fail uint32

	Calls []Call

	pending []uint32
	texW    int32
	texH    int32
	texPix  []byte
}

// NewRecorder returns a Recorder with a current context.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) IsCurrent() bool {
	return !r.NoContext
}

func (r *Recorder) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	c := Call{
		Target:         target,
		Level:          level,
		InternalFormat: internalFormat,
		Width:          width,
		Height:         height,
		Border:         border,
		Format:         format,
		Type:           xtype,
	}
	if pixels != nil && width > 0 && height > 0 {
		c.Pixels = append([]byte(nil), unsafe.Slice((*byte)(pixels), int(width)*int(height)*4)...)
	}
	r.Calls = append(r.Calls, c)

	if r.Fail != texupload.NoError {
		r.pending = append(r.pending, r.Fail)
		return
	}
	r.texW, r.texH, r.texPix = width, height, c.Pixels
}

func (r *Recorder) GetError() uint32 {
	if len(r.pending) == 0 {
		return texupload.NoError
	}
	code := r.pending[0]
	r.pending = r.pending[1:]
	return code
}

// QueueError leaves code pending as if an earlier call had failed.
func (r *Recorder) QueueError(code uint32) {
	r.pending = append(r.pending, code)
}

// Texture returns the state of the bound texture after the last successful upload.
func (r *Recorder) Texture() (width, height int32, pixels []byte) {
	return r.texW, r.texH, r.texPix
}

// Reset forgets recorded calls and texture state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.pending = nil
	r.texW, r.texH, r.texPix = 0, 0, nil
}
