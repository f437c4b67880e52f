// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"fmt"
	"image"
	"unsafe"
)

// GL enums used by the upload path.
const (
	Texture2D    = 0x0DE1
	RGBA         = 0x1908
	UnsignedByte = 0x1401

	NoError                     = 0
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506
)

// maxStaleErrors bounds how many pending errors are drained before an upload.
// GL keeps one flag per error kind, so a handful is always enough.
const maxStaleErrors = 8

// GraphicsContext is the graphics context an upload runs against. Every call
// applies to the texture currently bound to the target on that context.
type GraphicsContext interface {
	// IsCurrent reports whether the context can accept calls on this thread.
	IsCurrent() bool

	// TexImage2D specifies a two-dimensional texture image.
	TexImage2D(
		target uint32,
		level int32,
		internalFormat int32,
		width int32,
		height int32,
		border int32,
		format uint32,
		xtype uint32,
		pixels unsafe.Pointer,
	)

	// GetError returns and clears the oldest pending error, or NoError.
	GetError() uint32
}

// UploadRGBA uploads buf as a width x height RGBA texture image, level 0, into
// the texture bound to Texture2D on gc. It issues exactly one TexImage2D call.
// The buffer is only borrowed for the duration of the call.
func UploadRGBA(gc GraphicsContext, buf PixelBuffer, width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrSizeMismatch)
	}
	want := int64(width) * int64(height) * 4
	if got := int64(buf.Len()); got != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrSizeMismatch, got, want, width, height)
	}
	if gc == nil || !gc.IsCurrent() {
		return ErrNoGraphicsContext
	}

	log := Logger()
	for i := 0; i < maxStaleErrors; i++ {
		code := gc.GetError()
		if code == NoError {
			break
		}
		log.Warn("texupload: discarding stale driver error", "code", glErrorName(code))
	}

	view, err := buf.Acquire()
	if err != nil {
		return fmt.Errorf("texupload: acquiring pixel buffer: %w", err)
	}
	defer view.Release()

	gc.TexImage2D(Texture2D, 0, RGBA, width, height, 0, RGBA, UnsignedByte, view.Ptr)
	if code := gc.GetError(); code != NoError {
		return &DriverError{Code: code}
	}
	log.Debug("texupload: uploaded", "width", width, "height", height, "bytes", view.Len)
	return nil
}

// UploadImage converts img to tightly packed RGBA and uploads it.
func UploadImage(gc GraphicsContext, img image.Image) error {
	return NewBitmap(img).Upload(gc)
}
