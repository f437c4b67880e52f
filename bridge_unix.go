// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package texupload

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

const darwinOpenGL = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// contextLib is a library exposing a current-context query.
type contextLib struct {
	name   string
	symbol string
}

func doInitBridge(gl *GLES, libDir string) error {
	glName := bridgeLibName()
	glHandle, err := dlopen(libPath(libDir, glName))
	if err != nil {
		return err
	}
	gl.Library = libPath(libDir, glName)
	if err := resolveAllSymbols(gl, glHandle); err != nil {
		return err
	}

	var errs []error
	for _, cl := range contextLibs() {
		handle, err := dlopen(libPath(libDir, cl.name))
		if err == nil {
			err = gl.addContextQuery(handle, cl.symbol)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(gl.contextQueries) == 0 {
		return fmt.Errorf("no current-context query available: %w", errors.Join(errs...))
	}
	for _, err := range errs {
		Logger().Debug("texupload: context query skipped", "err", err)
	}
	return nil
}

func dlopen(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return handle, nil
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, err
	}
	return sym, nil
}

func bridgeLibName() string {
	switch runtime.GOOS {
	case "darwin":
		return darwinOpenGL
	case "android":
		return "libGLESv2.so"
	default:
		return "libGLESv2.so.2"
	}
}

// contextLibs lists the libraries whose current-context query IsCurrent
// consults. Desktop Linux contexts may be EGL or GLX (GLFW and X11 default
// to GLX), so both are tried.
func contextLibs() []contextLib {
	switch runtime.GOOS {
	case "darwin":
		return []contextLib{{darwinOpenGL, "CGLGetCurrentContext"}}
	case "android":
		return []contextLib{{"libEGL.so", "eglGetCurrentContext"}}
	default:
		return []contextLib{
			{"libEGL.so.1", "eglGetCurrentContext"},
			{"libGL.so.1", "glXGetCurrentContext"},
		}
	}
}
