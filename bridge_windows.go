// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package texupload

import (
	"fmt"
	"syscall"
)

func doInitBridge(gl *GLES, libDir string) error {
	dllPath := libPath(libDir, "opengl32.dll")
	lib, err := syscall.LoadLibrary(dllPath)
	if err != nil {
		return fmt.Errorf("failed to load opengl32.dll from %s: %w", dllPath, err)
	}
	gl.Library = dllPath
	if err := resolveAllSymbols(gl, uintptr(lib)); err != nil {
		return err
	}
	return gl.addContextQuery(uintptr(lib), "wglGetCurrentContext")
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}
