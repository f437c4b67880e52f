// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("texupload: invalid dimensions")
	// ErrSizeMismatch is returned when the buffer length is not width*height*4.
	ErrSizeMismatch = errors.New("texupload: buffer size mismatch")
	// ErrNoGraphicsContext is returned when no graphics context is current.
	ErrNoGraphicsContext = errors.New("texupload: no current graphics context")
	// ErrDriverRejected matches every *DriverError.
	ErrDriverRejected = errors.New("texupload: driver rejected upload")
)

// DriverError is the error code reported by glGetError after an upload.
type DriverError struct {
	Code uint32
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s: %s (0x%04X)", ErrDriverRejected, glErrorName(e.Code), e.Code)
}

func (e *DriverError) Unwrap() error {
	return ErrDriverRejected
}

func glErrorName(code uint32) string {
	switch code {
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "unknown GL error"
	}
}
