package object

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAppendCode(t *testing.T) {
	assert := assert.New(t)

	obj := NewFile()
	assert.Equal(0, obj.CodeSize())

	rng := rand.New(rand.NewSource(1))
	size := 0
	for range 100 {
		chunk := make([]byte, rng.Intn(4))
		rng.Read(chunk)

		offset := obj.AppendCode(chunk)
		assert.Equal(size, offset)
		size += len(chunk)
		assert.Equal(size, obj.CodeSize())
		assert.Equal(chunk, obj.CodeSlice(offset, len(chunk)))
	}
}

func TestFileAppendData(t *testing.T) {
	assert := assert.New(t)

	obj := NewFile()
	obj.AppendData('M')
	assert.Equal(1, obj.DataSize())

	offset := obj.AppendDataBytes([]byte("YGAME\x00"))
	assert.Equal(1, offset)
	assert.Equal(7, obj.DataSize())
	assert.Equal([]byte("MYGAME\x00"), obj.DataSlice(0, 7))
	assert.Equal([]byte("GAME"), obj.DataSlice(2, 4))
	assert.Equal(0, obj.CodeSize())
}

func TestFileSliceBounds(t *testing.T) {
	assert := assert.New(t)

	obj := NewFile()
	obj.AppendCode([]byte{1, 2, 3})
	obj.AppendData(4)

	assert.Equal([]byte{}, obj.CodeSlice(3, 0))
	assert.PanicsWithError("segment slice out of bounds: code [2:+2] of 3", func() { obj.CodeSlice(2, 2) })
	assert.Panics(func() { obj.CodeSlice(-1, 1) })
	assert.Panics(func() { obj.CodeSlice(0, -1) })
	assert.Panics(func() { obj.DataSlice(0, 2) })
	assert.Panics(func() { obj.DataSlice(1, 1) })
}

func TestFileSliceIsView(t *testing.T) {
	assert := assert.New(t)

	obj := NewFile()
	obj.AppendCode([]byte{1, 2, 3})

	view := obj.CodeSlice(0, 2)
	assert.Equal(2, cap(view))

	// Appending to a view must not overwrite the segment.
	_ = append(view, 9)
	assert.Equal([]byte{1, 2, 3}, obj.CodeSlice(0, 3))
}

func TestFilePatchCode(t *testing.T) {
	assert := assert.New(t)

	obj := NewFile()
	obj.AppendCode([]byte{0xc3, 0x00, 0x00})
	obj.AppendCode([]byte{0x00})

	obj.PatchCode(1, []byte{0x50, 0x01})
	assert.Equal([]byte{0xc3, 0x50, 0x01, 0x00}, obj.CodeSlice(0, 4))
	assert.Equal(4, obj.CodeSize())

	assert.Panics(func() { obj.PatchCode(3, []byte{1, 2}) })
	assert.Equal(4, obj.CodeSize())
}

func TestFileFreeze(t *testing.T) {
	assert := assert.New(t)

	obj := NewFile()
	obj.AppendCode([]byte{0x00})
	assert.False(obj.Frozen())

	obj.Freeze()
	assert.True(obj.Frozen())

	assert.PanicsWithValue(ErrFrozen, func() { obj.AppendCode([]byte{0x00}) })
	assert.PanicsWithValue(ErrFrozen, func() { obj.AppendData(0) })
	assert.PanicsWithValue(ErrFrozen, func() { obj.AppendDataBytes(nil) })
	assert.PanicsWithValue(ErrFrozen, func() { obj.AppendCode(nil) })
	assert.PanicsWithValue(ErrFrozen, func() { obj.PatchCode(0, []byte{0x76}) })

	// Reading is still allowed.
	assert.Equal([]byte{0x00}, obj.CodeSlice(0, 1))
}
