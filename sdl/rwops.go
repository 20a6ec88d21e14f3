package sdl

import (
	"errors"
	"io"
	"math"
	"runtime"
	"unsafe"

	"github.com/bnema/sdlbind/resource"
)

var (
	sdlRWFromFile     func(file, mode string) uintptr
	sdlRWFromMem      func(mem *byte, size int32) uintptr
	sdlRWFromConstMem func(mem *byte, size int32) uintptr
	sdlRWsize         func(ctx uintptr) int64
	sdlRWseek         func(ctx uintptr, offset int64, whence int32) int64
	sdlRWtell         func(ctx uintptr) int64
	sdlRWread         func(ctx uintptr, ptr *byte, size, maxnum uintptr) uintptr
	sdlRWwrite        func(ctx uintptr, ptr *byte, size, num uintptr) uintptr
	sdlRWclose        func(ctx uintptr) int32

	sdlReadU8    func(ctx uintptr) uint8
	sdlReadLE16  func(ctx uintptr) uint16
	sdlReadBE16  func(ctx uintptr) uint16
	sdlReadLE32  func(ctx uintptr) uint32
	sdlReadBE32  func(ctx uintptr) uint32
	sdlReadLE64  func(ctx uintptr) uint64
	sdlReadBE64  func(ctx uintptr) uint64
	sdlWriteU8   func(ctx uintptr, v uint8) uintptr
	sdlWriteLE16 func(ctx uintptr, v uint16) uintptr
	sdlWriteBE16 func(ctx uintptr, v uint16) uintptr
	sdlWriteLE32 func(ctx uintptr, v uint32) uintptr
	sdlWriteBE32 func(ctx uintptr, v uint32) uintptr
	sdlWriteLE64 func(ctx uintptr, v uint64) uintptr
	sdlWriteBE64 func(ctx uintptr, v uint64) uintptr
)

func init() {
	bind(
		"SDL_RWFromFile", &sdlRWFromFile,
		"SDL_RWFromMem", &sdlRWFromMem,
		"SDL_RWFromConstMem", &sdlRWFromConstMem,
		"SDL_RWsize", &sdlRWsize,
		"SDL_RWseek", &sdlRWseek,
		"SDL_RWtell", &sdlRWtell,
		"SDL_RWread", &sdlRWread,
		"SDL_RWwrite", &sdlRWwrite,
		"SDL_RWclose", &sdlRWclose,

		"SDL_ReadU8", &sdlReadU8,
		"SDL_ReadLE16", &sdlReadLE16,
		"SDL_ReadBE16", &sdlReadBE16,
		"SDL_ReadLE32", &sdlReadLE32,
		"SDL_ReadBE32", &sdlReadBE32,
		"SDL_ReadLE64", &sdlReadLE64,
		"SDL_ReadBE64", &sdlReadBE64,
		"SDL_WriteU8", &sdlWriteU8,
		"SDL_WriteLE16", &sdlWriteLE16,
		"SDL_WriteBE16", &sdlWriteBE16,
		"SDL_WriteLE32", &sdlWriteLE32,
		"SDL_WriteBE32", &sdlWriteBE32,
		"SDL_WriteLE64", &sdlWriteLE64,
		"SDL_WriteBE64", &sdlWriteBE64,
	)
}

// ErrMemoryTooLarge is returned when a buffer exceeds what SDL_RWFromMem
// accepts.
var ErrMemoryTooLarge = errors.New("sdl: buffer larger than 2 GiB")

// RWops is an SDL byte stream. It implements io.ReadWriteSeeker and io.Closer.
type RWops struct {
	*resource.Owner[uintptr]
	mem []byte
}

var (
	_ io.ReadWriteSeeker = (*RWops)(nil)
	_ io.Closer          = (*RWops)(nil)
)

func closeRW(ctx uintptr) {
	sdlRWclose(ctx)
}

// NewRWFromFile opens file with an fopen-style mode such as "rb" or "w+b";
// on failure the result is not Valid.
func NewRWFromFile(file, mode string) *RWops {
	open := func() uintptr { return sdlRWFromFile(file, mode) }
	return &RWops{Owner: resource.New(handleFrom("SDL_RWFromFile", open), closeRW)}
}

// RWFromFile opens file and reports why it failed.
func RWFromFile(file, mode string) (*RWops, error) {
	return resource.Make(func() *RWops { return NewRWFromFile(file, mode) }, func() error {
		return lastError("SDL_RWFromFile")
	})
}

func memStream(op string, mem []byte, open func(*byte, int32) uintptr) (*RWops, error) {
	if len(mem) == 0 {
		return nil, errorf(op, nil, "empty buffer")
	}
	if len(mem) > math.MaxInt32 {
		return nil, &Error{Op: op, Err: ErrMemoryTooLarge}
	}
	return resource.Make(func() *RWops {
		create := func() uintptr { return open(&mem[0], int32(len(mem))) }
		return &RWops{Owner: resource.New(handleFrom(op, create), closeRW), mem: mem}
	}, func() error {
		return lastError(op)
	})
}

// RWFromMem streams over mem, which is read and written in place and kept alive
// by the returned RWops.
func RWFromMem(mem []byte) (*RWops, error) {
	return memStream("SDL_RWFromMem", mem, sdlRWFromMem)
}

// RWFromConstMem streams read-only over mem.
func RWFromConstMem(mem []byte) (*RWops, error) {
	return memStream("SDL_RWFromConstMem", mem, sdlRWFromConstMem)
}

// Move transfers ownership to a new RWops.
func (rw *RWops) Move() *RWops {
	return &RWops{Owner: rw.Owner.Move(), mem: rw.mem}
}

// Close closes the stream and reports a failure to flush.
func (rw *RWops) Close() error {
	h, ok := rw.Take()
	if !ok {
		return nil
	}
	defer runtime.KeepAlive(rw.mem)
	return status("SDL_RWclose", func() int32 { return sdlRWclose(h) })
}

func (rw *RWops) handle(op string) (uintptr, error) {
	h := rw.Native()
	if h == 0 {
		return 0, &Error{Op: op, Err: ErrClosed}
	}
	return h, nil
}

// Size returns the stream size, or an error if it is unknown.
func (rw *RWops) Size() (int64, error) {
	h, err := rw.handle("SDL_RWsize")
	if err != nil {
		return 0, err
	}
	var n int64
	err = check("SDL_RWsize", func() bool {
		n = sdlRWsize(h)
		return n >= 0
	})
	return n, err
}

// Tell returns the current offset.
func (rw *RWops) Tell() (int64, error) {
	h, err := rw.handle("SDL_RWtell")
	if err != nil {
		return 0, err
	}
	var n int64
	err = check("SDL_RWtell", func() bool {
		n = sdlRWtell(h)
		return n >= 0
	})
	return n, err
}

// Seek implements io.Seeker. SDL uses the same whence values as io.
func (rw *RWops) Seek(offset int64, whence int) (int64, error) {
	h, err := rw.handle("SDL_RWseek")
	if err != nil {
		return 0, err
	}
	var n int64
	err = check("SDL_RWseek", func() bool {
		n = sdlRWseek(h, offset, int32(whence))
		return n >= 0
	})
	return n, err
}

// Read implements io.Reader.
func (rw *RWops) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	h, err := rw.handle("SDL_RWread")
	if err != nil {
		return 0, err
	}
	n := sdlRWread(h, &p[0], 1, uintptr(len(p)))
	runtime.KeepAlive(rw.mem)
	if n == 0 {
		return 0, io.EOF
	}
	return int(n), nil
}

// Write implements io.Writer.
func (rw *RWops) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	h, err := rw.handle("SDL_RWwrite")
	if err != nil {
		return 0, err
	}
	var n uintptr
	err = check("SDL_RWwrite", func() bool {
		n = sdlRWwrite(h, &p[0], 1, uintptr(len(p)))
		return n == uintptr(len(p))
	})
	runtime.KeepAlive(rw.mem)
	if err != nil {
		if n == 0 {
			return 0, err
		}
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}

// ReadLE reads a little-endian integer of T's width.
func ReadLE[T Integer](rw *RWops) (T, error) {
	return readInt[T](rw, false)
}

// ReadBE reads a big-endian integer of T's width.
func ReadBE[T Integer](rw *RWops) (T, error) {
	return readInt[T](rw, true)
}

// WriteLE writes v in little-endian order.
func WriteLE[T Integer](rw *RWops, v T) error {
	return writeInt(rw, v, false)
}

// WriteBE writes v in big-endian order.
func WriteBE[T Integer](rw *RWops, v T) error {
	return writeInt(rw, v, true)
}

// readInt dispatches on T's width. SDL's fixed-width readers cannot signal
// failure, so a short read is detected by comparing offsets when the stream
// can report them.
func readInt[T Integer](rw *RWops, big bool) (T, error) {
	var zero T
	op := "SDL_ReadLE"
	if big {
		op = "SDL_ReadBE"
	}
	h, err := rw.handle(op)
	if err != nil {
		return zero, err
	}

	size := int64(unsafe.Sizeof(zero))
	before := sdlRWtell(h)

	var v T
	switch size {
	case 1:
		v = T(sdlReadU8(h))
	case 2:
		if big {
			v = T(sdlReadBE16(h))
		} else {
			v = T(sdlReadLE16(h))
		}
	case 4:
		if big {
			v = T(sdlReadBE32(h))
		} else {
			v = T(sdlReadLE32(h))
		}
	case 8:
		if big {
			v = T(sdlReadBE64(h))
		} else {
			v = T(sdlReadLE64(h))
		}
	}
	runtime.KeepAlive(rw.mem)

	if before >= 0 {
		if after := sdlRWtell(h); after >= 0 && after-before != size {
			return zero, io.ErrUnexpectedEOF
		}
	}
	return v, nil
}

func writeInt[T Integer](rw *RWops, v T, big bool) error {
	op := "SDL_WriteLE"
	if big {
		op = "SDL_WriteBE"
	}
	h, err := rw.handle(op)
	if err != nil {
		return err
	}

	var n uintptr
	err = check(op, func() bool {
		switch unsafe.Sizeof(v) {
		case 1:
			n = sdlWriteU8(h, uint8(v))
		case 2:
			if big {
				n = sdlWriteBE16(h, uint16(v))
			} else {
				n = sdlWriteLE16(h, uint16(v))
			}
		case 4:
			if big {
				n = sdlWriteBE32(h, uint32(v))
			} else {
				n = sdlWriteLE32(h, uint32(v))
			}
		case 8:
			if big {
				n = sdlWriteBE64(h, uint64(v))
			} else {
				n = sdlWriteLE64(h, uint64(v))
			}
		}
		return n == 1
	})
	runtime.KeepAlive(rw.mem)
	return err
}
