// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package texupload uploads RGBA pixel buffers into the bound 2D texture of a
// graphics context with a single glTexImage2D call.
//
// A pixel buffer is either a Go byte slice ([Bytes]) or memory that native code
// can address directly ([Direct], [DirectBuffer]). Both are borrowed only for
// the duration of the upload and never retained.
//
// Basic usage:
//
//	import "github.com/YindSoft/texupload"
//
//	// Native GL, loaded without cgo:
//	gl, err := texupload.LoadGLES(nil)
//	if err != nil {
//	    // fall back to an Ebitengine image as the texture
//	}
//
//	// On the thread that owns the GL context, with a texture bound:
//	pix := texupload.Bytes(rgba) // len(rgba) == w*h*4
//	if err := texupload.UploadRGBA(gl, pix, w, h); err != nil { ... }
//
//	// Or from any image.Image:
//	bmp, err := texupload.DecodeFile("photo.jpg")
//	err = bmp.Upload(gl)
//
// Ebitengine target:
//
// [ImageTarget] implements [GraphicsContext] on top of an *ebiten.Image so the
// same upload path works inside an Ebitengine game:
//
//	target := &texupload.ImageTarget{}
//	err := texupload.UploadImage(target, img)
//	screen.DrawImage(target.Image, nil)
//
// Errors:
//
// Invalid dimensions and size mismatches are rejected before the buffer is
// touched. A missing context yields [ErrNoGraphicsContext]. Errors reported by
// the driver are returned as [*DriverError], which matches [ErrDriverRejected].
// Nothing is retried.
//
// Threading: graphics contexts are bound to an OS thread. Callers must use
// runtime.LockOSThread and serialize access to the context themselves; the
// package takes no locks around uploads.
package texupload
