// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeFS(t *testing.T) {
	fsys := fstest.MapFS{
		"img/pic.png": &fstest.MapFile{Data: encodePNG(t)},
		"img/bad.png": &fstest.MapFile{Data: []byte("not a png")},
	}

	bm, err := DecodeFS(fsys, "img/pic.png")
	require.NoError(t, err)
	assert.Equal(t, int32(2), bm.Width)
	assert.Equal(t, int32(1), bm.Height)
	assert.Equal(t, Bytes{255, 0, 0, 255, 0, 0, 255, 255}, bm.Pix)

	_, err = DecodeFS(fsys, "img/missing.png")
	assert.ErrorContains(t, err, "img/missing.png")

	_, err = DecodeFS(fsys, "img/bad.png")
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t), 0o644))

	bm, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, bm.Pix, 8)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
