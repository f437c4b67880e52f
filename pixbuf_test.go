// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package texupload

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesAcquire(t *testing.T) {
	b := Bytes{1, 2, 3, 4}
	v, err := b.Acquire()
	require.NoError(t, err)
	assert.Equal(t, unsafe.Pointer(&b[0]), v.Ptr)
	assert.Equal(t, 4, v.Len)
	assert.Equal(t, []byte{1, 2, 3, 4}, unsafe.Slice((*byte)(v.Ptr), v.Len))
	v.Release()
	assert.Equal(t, Bytes{1, 2, 3, 4}, b, "release must not write back")
}

func TestBytesAcquireEmpty(t *testing.T) {
	v, err := Bytes(nil).Acquire()
	require.NoError(t, err)
	assert.Nil(t, v.Ptr)
	assert.Zero(t, v.Len)
	v.Release()
}

func TestDirect(t *testing.T) {
	backing := [8]byte{9, 8, 7, 6, 5, 4, 3, 2}
	d := NewDirect(unsafe.Pointer(&backing[0]), len(backing))
	assert.Equal(t, 8, d.Len())

	v, err := d.Acquire()
	require.NoError(t, err)
	assert.Equal(t, unsafe.Pointer(&backing[0]), v.Ptr, "direct buffers are not copied")
	v.Release()

	assert.Zero(t, NewDirect(nil, 16).Len())
	assert.Zero(t, NewDirect(unsafe.Pointer(&backing[0]), -1).Len())
}

func TestViewRelease(t *testing.T) {
	n := 0
	v := NewView(nil, 0, func() { n++ })
	v.Release()
	assert.Equal(t, 1, n)

	View{}.Release()
}

func TestDriverErrorMessage(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{InvalidEnum, "GL_INVALID_ENUM (0x0500)"},
		{InvalidValue, "GL_INVALID_VALUE (0x0501)"},
		{InvalidOperation, "GL_INVALID_OPERATION (0x0502)"},
		{OutOfMemory, "GL_OUT_OF_MEMORY (0x0505)"},
		{InvalidFramebufferOperation, "GL_INVALID_FRAMEBUFFER_OPERATION (0x0506)"},
		{0x1234, "unknown GL error (0x1234)"},
	}
	for _, tt := range tests {
		err := &DriverError{Code: tt.code}
		assert.Contains(t, err.Error(), tt.want)
		assert.ErrorIs(t, err, ErrDriverRejected)
	}
}
