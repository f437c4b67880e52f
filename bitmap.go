// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Bitmap is a tightly packed RGBA image ready to be uploaded.
type Bitmap struct {
	Pix    Bytes
	Width  int32
	Height int32
}

// NewBitmap returns img as a Bitmap. A *image.RGBA whose rows are already
// tightly packed is borrowed without copying; anything else is converted into
// a new premultiplied RGBA buffer.
func NewBitmap(img image.Image) *Bitmap {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() {
		off := rgba.PixOffset(b.Min.X, b.Min.Y)
		return &Bitmap{
			Pix:    Bytes(rgba.Pix[off : off+4*b.Dx()*b.Dy()]),
			Width:  int32(b.Dx()),
			Height: int32(b.Dy()),
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Bitmap{Pix: Bytes(dst.Pix), Width: int32(b.Dx()), Height: int32(b.Dy())}
}

// NewBitmapScaled resamples img to width x height. A nil interp uses
// draw.ApproxBiLinear.
func NewBitmapScaled(img image.Image, width, height int, interp draw.Interpolator) *Bitmap {
	if interp == nil {
		interp = draw.ApproxBiLinear
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return &Bitmap{Pix: Bytes(dst.Pix), Width: int32(width), Height: int32(height)}
}

// RGBA returns an *image.RGBA sharing the bitmap's pixels.
func (bm *Bitmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    bm.Pix,
		Stride: 4 * int(bm.Width),
		Rect:   image.Rect(0, 0, int(bm.Width), int(bm.Height)),
	}
}

// Upload uploads the bitmap into the texture bound on gc.
func (bm *Bitmap) Upload(gc GraphicsContext) error {
	if bm == nil {
		return fmt.Errorf("%w: nil bitmap", ErrSizeMismatch)
	}
	return UploadRGBA(gc, bm.Pix, bm.Width, bm.Height)
}
