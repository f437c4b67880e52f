// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"unsafe"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageTarget is a GraphicsContext whose bound texture is an Ebitengine image.
// Use it where raw GL is not reachable, e.g. inside an Ebitengine game or when
// LoadGLES fails.
//
// Like glTexImage2D, an upload with different dimensions redefines the
// storage: the old image is deallocated and Image is replaced. A nil pixel
// pointer only defines the storage; the image is cleared to transparent.
type ImageTarget struct {
	Image *ebiten.Image

	err uint32
}

// IsCurrent reports whether the target can take uploads.
func (t *ImageTarget) IsCurrent() bool {
	return t != nil
}

func (t *ImageTarget) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	switch {
	case target != Texture2D || internalFormat != RGBA || format != RGBA || xtype != UnsignedByte:
		t.setError(InvalidEnum)
		return
	case level != 0 || border != 0 || width <= 0 || height <= 0:
		t.setError(InvalidValue)
		return
	}

	if t.Image == nil || t.Image.Bounds().Dx() != int(width) || t.Image.Bounds().Dy() != int(height) {
		if t.Image != nil {
			t.Image.Deallocate()
		}
		t.Image = ebiten.NewImage(int(width), int(height))
	}
	if pixels == nil {
		t.Image.Clear()
		return
	}
	// WritePixels copies, so the borrowed memory is not retained.
	t.Image.WritePixels(unsafe.Slice((*byte)(pixels), int(width)*int(height)*4))
}

// GetError returns and clears the first error recorded since the last call.
func (t *ImageTarget) GetError() uint32 {
	code := t.err
	t.err = NoError
	return code
}

func (t *ImageTarget) setError(code uint32) {
	if t.err == NoError {
		t.err = code
	}
}
