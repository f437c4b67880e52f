// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Options for loading the native GL library. All fields are optional.
//
// Besides the GL library, LoadGLES opens every library that can report the
// current context: libEGL and libGL (GLX) on Linux, OpenGL.framework (CGL) on
// macOS, opengl32.dll (WGL) on Windows. Missing ones are skipped as long as
// one is found, and a context counts as current when any of them reports one.
type Options struct {
	LibDir string // Directory containing the GL and context libraries. Empty uses the system loader search path.
	Debug  bool   // Log uploads to stderr at debug level. Default false.
}

// GLES is a GraphicsContext backed by the platform GL library, called through
// purego without cgo. All calls apply to the context current on the calling
// OS thread.
type GLES struct {
	texImage2D func(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	getError   func() uint32

	// eglGetCurrentContext, glXGetCurrentContext, ... whichever resolved.
	contextQueries []func() uintptr

	// Path of the library glTexImage2D was resolved from.
	Library string
}

// LoadGLES opens the platform GL library and resolves the entry points used
// for uploads. Callers that get an error can fall back to an ImageTarget.
func LoadGLES(opts *Options) (*GLES, error) {
	libDir, debug := resolveOpts(opts)
	if debug {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	gl := &GLES{}
	if err := doInitBridge(gl, libDir); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	Logger().Info("texupload: native GL loaded", "library", gl.Library)
	return gl, nil
}

func resolveOpts(opts *Options) (string, bool) {
	if opts == nil {
		return "", false
	}
	return opts.LibDir, opts.Debug
}

// libPath places name in libDir. With no libDir name is returned unchanged so
// the system loader searches its usual paths.
func libPath(libDir, name string) string {
	if libDir == "" {
		return name
	}
	p := filepath.Join(libDir, filepath.Base(name))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func resolveAllSymbols(gl *GLES, glHandle uintptr) error {
	for _, reg := range []struct {
		fptr interface{}
		name string
	}{
		{&gl.texImage2D, "glTexImage2D"},
		{&gl.getError, "glGetError"},
	} {
		sym, err := getSymbolAddr(glHandle, reg.name)
		if err != nil {
			return fmt.Errorf("%s: %w", reg.name, err)
		}
		purego.RegisterFunc(reg.fptr, sym)
	}
	return nil
}

func (gl *GLES) addContextQuery(handle uintptr, name string) error {
	sym, err := getSymbolAddr(handle, name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var query func() uintptr
	purego.RegisterFunc(&query, sym)
	gl.contextQueries = append(gl.contextQueries, query)
	return nil
}

// IsCurrent reports whether a GL context is current on the calling thread.
func (gl *GLES) IsCurrent() bool {
	if gl == nil {
		return false
	}
	for _, query := range gl.contextQueries {
		if query() != 0 {
			return true
		}
	}
	return false
}

func (gl *GLES) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.texImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
}

func (gl *GLES) GetError() uint32 {
	return gl.getError()
}
