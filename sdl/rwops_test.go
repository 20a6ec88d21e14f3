package sdl

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRWopsEndianRoundTrip(t *testing.T) {
	requireSDL(t, 0)

	buf := make([]byte, 32)
	rw, err := RWFromMem(buf)
	require.NoError(t, err)
	defer rw.Close()

	require.NoError(t, WriteLE(rw, uint16(0x1234)))
	require.NoError(t, WriteBE(rw, uint16(0x1234)))
	require.NoError(t, WriteLE(rw, int32(-2)))
	require.NoError(t, WriteBE(rw, uint64(0x0102030405060708)))
	require.NoError(t, WriteLE(rw, uint8(0xab)))

	assert.Equal(t, []byte{0x34, 0x12, 0x12, 0x34, 0xfe, 0xff, 0xff, 0xff}, buf[:8])
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 0xab}, buf[8:17])

	off, err := rw.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)

	u16, err := ReadLE[uint16](rw)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)
	u16, err = ReadBE[uint16](rw)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)
	i32, err := ReadLE[int32](rw)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i32)
	u64, err := ReadBE[uint64](rw)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)
	u8, err := ReadLE[uint8](rw)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xab), u8)

	pos, err := rw.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(17), pos)

	_, err = rw.Seek(0, io.SeekStart)
	require.NoError(t, err)
	swapped, err := ReadBE[uint16](rw)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3412), swapped, "little-endian bytes read big-endian come back swapped")
}

func TestRWopsShortRead(t *testing.T) {
	requireSDL(t, 0)

	rw, err := RWFromConstMem([]byte{1, 2})
	require.NoError(t, err)
	defer rw.Close()

	_, err = ReadLE[uint32](rw)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRWopsConstMemRejectsWrites(t *testing.T) {
	requireSDL(t, 0)

	rw, err := RWFromConstMem([]byte("read only"))
	require.NoError(t, err)
	defer rw.Close()

	n, err := rw.Write([]byte("x"))
	assert.Error(t, err)
	assert.Zero(t, n)

	data, err := io.ReadAll(rw)
	require.NoError(t, err)
	assert.Equal(t, "read only", string(data))
}

func TestRWopsFile(t *testing.T) {
	requireSDL(t, 0)

	path := filepath.Join(t.TempDir(), "data.bin")
	rw, err := RWFromFile(path, "wb")
	require.NoError(t, err)
	n, err := rw.Write([]byte("hello sdl"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	require.NoError(t, rw.Close())
	require.NoError(t, rw.Close(), "closing twice is a no-op")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello sdl", string(got))

	rw = NewRWFromFile(path, "rb")
	require.True(t, rw.Valid())
	moved := rw.Move()
	defer moved.Close()
	assert.False(t, rw.Valid())

	size, err := moved.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)

	_, err = rw.Read(make([]byte, 4))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRWopsEmptyBuffer(t *testing.T) {
	_, err := RWFromMem(nil)
	assert.Error(t, err)
}
