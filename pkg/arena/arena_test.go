package arena

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/raymyers/cparse/pkg/diag"
)

func TestAllocAdvancesCursor(t *testing.T) {
	a := New(make([]byte, 64))

	b, err := a.Alloc(3, 1)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(b) != 3 {
		t.Errorf("len = %d, want 3", len(b))
	}
	if a.Used() != 3 {
		t.Errorf("Used() = %d, want 3", a.Used())
	}
	if a.Remaining() != 61 {
		t.Errorf("Remaining() = %d, want 61", a.Remaining())
	}
}

func TestAllocAlignment(t *testing.T) {
	a := New(make([]byte, 64))
	if _, err := a.Alloc(1, 1); err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	for _, align := range []int{2, 4, 8} {
		b, err := a.Alloc(1, align)
		if err != nil {
			t.Fatalf("Alloc(1, %d): %v", align, err)
		}
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
		if addr%uintptr(align) != 0 {
			t.Errorf("Alloc(1, %d) returned address %#x", align, addr)
		}
	}
}

func TestAllocOutOfMemory(t *testing.T) {
	a := New(make([]byte, 8))
	if _, err := a.Alloc(8, 1); err != nil {
		t.Fatalf("exact fit should succeed: %v", err)
	}

	_, err := a.Alloc(1, 1)
	if !errors.Is(err, diag.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if a.Used() != 8 {
		t.Errorf("failed Alloc moved the cursor to %d", a.Used())
	}
}

func TestAllocEmptyBuffer(t *testing.T) {
	a := New(nil)
	if _, err := a.Alloc(1, 1); !errors.Is(err, diag.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if _, err := a.Alloc(0, 1); err != nil {
		t.Errorf("zero-size Alloc on empty buffer: %v", err)
	}
}

func TestAllocBadAlignmentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for alignment 3")
		}
	}()
	New(make([]byte, 8)).Alloc(1, 3)
}

func TestIntern(t *testing.T) {
	buf := make([]byte, 16)
	a := New(buf)
	scratch := []byte("field")

	s, err := a.Intern(scratch)
	if err != nil {
		t.Fatalf("Intern: %v", err)
	}
	scratch[0] = 'X'
	if s != "field" {
		t.Errorf("Intern = %q, want %q", s, "field")
	}
	if string(buf[:5]) != "field" {
		t.Errorf("spelling not stored in arena buffer: %q", buf[:5])
	}

	if _, err := a.Intern([]byte("0123456789abcdef")); !errors.Is(err, diag.ErrOutOfMemory) {
		t.Errorf("expected ErrOutOfMemory, got %v", err)
	}
}

func TestReserve(t *testing.T) {
	type node struct {
		a, b int64
	}
	a := New(make([]byte, 24))
	if err := Reserve[node](a); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if a.Used() < 16 {
		t.Errorf("Used() = %d, want at least 16", a.Used())
	}
	if err := Reserve[node](a); !errors.Is(err, diag.ErrOutOfMemory) {
		t.Errorf("expected ErrOutOfMemory, got %v", err)
	}
}
