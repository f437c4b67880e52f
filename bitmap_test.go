// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func TestNewBitmapTightRGBAIsBorrowed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{10, 20, 30, 255})

	bm := NewBitmap(img)
	assert.Equal(t, int32(3), bm.Width)
	assert.Equal(t, int32(2), bm.Height)
	require.Len(t, bm.Pix, 24)
	assert.Same(t, &img.Pix[0], &bm.Pix[0])
}

func TestNewBitmapStridedSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3))

	bm := NewBitmap(sub)
	assert.Equal(t, int32(2), bm.Width)
	assert.Equal(t, int32(2), bm.Height)
	assert.Equal(t, Bytes{
		1, 1, 0, 255, 2, 1, 0, 255,
		1, 2, 0, 255, 2, 2, 0, 255,
	}, bm.Pix)
}

func TestNewBitmapFullWidthSubImageIsBorrowed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 2, color.RGBA{7, 7, 7, 255})
	sub := img.SubImage(image.Rect(0, 1, 2, 3)).(*image.RGBA)

	bm := NewBitmap(sub)
	assert.Equal(t, int32(2), bm.Height)
	assert.Same(t, &img.Pix[8], &bm.Pix[0])
	assert.Equal(t, uint8(7), bm.Pix[8])
}

func TestNewBitmapConvertsNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{200, 100, 0, 128})

	bm := NewBitmap(img)
	require.Len(t, bm.Pix, 4)
	// Converted to premultiplied alpha.
	c := color.RGBAModel.Convert(color.NRGBA{200, 100, 0, 128}).(color.RGBA)
	assert.Equal(t, Bytes{c.R, c.G, c.B, c.A}, bm.Pix)
}

func TestNewBitmapScaled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	bm := NewBitmapScaled(img, 4, 6, draw.NearestNeighbor)
	assert.Equal(t, int32(4), bm.Width)
	assert.Equal(t, int32(6), bm.Height)
	require.Len(t, bm.Pix, 4*6*4)
	for _, b := range bm.Pix {
		assert.Equal(t, uint8(255), b)
	}

	bm = NewBitmapScaled(img, 1, 1, nil)
	assert.Len(t, bm.Pix, 4)

	bm = NewBitmapScaled(img, -1, 1, nil)
	assert.Zero(t, bm.Width)
}

func TestBitmapRGBARoundTrip(t *testing.T) {
	bm := &Bitmap{Pix: Bytes{1, 2, 3, 4, 5, 6, 7, 8}, Width: 2, Height: 1}
	img := bm.RGBA()
	assert.Equal(t, color.RGBA{5, 6, 7, 8}, img.RGBAAt(1, 0))

	again := NewBitmap(img)
	assert.Same(t, &bm.Pix[0], &again.Pix[0])
}
