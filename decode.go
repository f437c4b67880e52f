// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format (PNG, JPEG, GIF, WebP, BMP,
// TIFF) and returns it as a Bitmap.
func Decode(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return NewBitmap(img), nil
}

// DecodeFile decodes the image at filePath.
func DecodeFile(filePath string) (*Bitmap, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading image file %s: %w", filePath, err)
	}
	defer f.Close()
	bm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filePath, err)
	}
	return bm, nil
}

// DecodeFS decodes the image name from fsys, e.g. an embed.FS.
func DecodeFS(fsys fs.FS, name string) (*Bitmap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer f.Close()
	bm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return bm, nil
}
