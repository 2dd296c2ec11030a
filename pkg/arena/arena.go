// Package arena implements a bump allocator over a caller-supplied buffer.
// Nothing is freed individually; the caller releases the whole buffer once
// it is done with everything allocated from it.
package arena

import (
	"fmt"
	"unsafe"

	"github.com/raymyers/cparse/pkg/diag"
)

// Arena hands out aligned regions of buf from a monotonically advancing cursor
type Arena struct {
	buf    []byte
	cursor int
}

// New creates an arena over buf. The arena takes exclusive use of buf until
// the caller discards everything allocated from it.
func New(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Alloc returns size bytes aligned to align, which must be a power of two.
// It fails with diag.ErrOutOfMemory if the aligned region would run past the
// end of the buffer; the cursor is left untouched in that case.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("arena: alignment %d is not a power of two", align))
	}
	if size < 0 {
		panic(fmt.Sprintf("arena: negative size %d", size))
	}
	start := a.aligned(align)
	end := start + size
	if end > len(a.buf) || end < start {
		return nil, diag.ErrOutOfMemory
	}
	a.cursor = end
	return a.buf[start:end:end], nil
}

// aligned rounds the cursor up so that the absolute address is a multiple of
// align. Empty buffers have no address to align against.
func (a *Arena) aligned(align int) int {
	if len(a.buf) == 0 {
		return a.cursor
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	addr := base + uintptr(a.cursor)
	mask := uintptr(align - 1)
	return int((addr+mask)&^mask - base)
}

// Intern copies b into the arena and returns a string backed by arena memory
func (a *Arena) Intern(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	dst, err := a.Alloc(len(b), 1)
	if err != nil {
		return "", err
	}
	copy(dst, b)
	return unsafe.String(unsafe.SliceData(dst), len(dst)), nil
}

// Reserve charges the arena for one value of type T.
//
// Go values that hold pointers cannot be placed inside a byte buffer without
// hiding those pointers from the garbage collector, so AST nodes are ordinary
// Go values whose storage is accounted here instead.
func Reserve[T any](a *Arena) error {
	var zero T
	_, err := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	return err
}

// Used returns the number of bytes consumed, including alignment padding
func (a *Arena) Used() int { return a.cursor }

// Cap returns the size of the underlying buffer
func (a *Arena) Cap() int { return len(a.buf) }

// Remaining returns the bytes left past the cursor
func (a *Arena) Remaining() int { return len(a.buf) - a.cursor }
