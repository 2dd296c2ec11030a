package diag

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"positioned",
			Errorf(SyntaxError, Pos{Filename: "a.h", Line: 3, Column: 7}, "unexpected '%c'.", '@'),
			"at a.h:3:7: error: unexpected '@'.",
		},
		{
			"file only",
			&Error{Kind: InvalidInputFile, Pos: Pos{Filename: "a.h"}, Msg: "cannot open file."},
			"at a.h: error: cannot open file.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsIs(t *testing.T) {
	err := &Error{Kind: InvalidInputFile, Pos: Pos{Filename: "a.h"}, Msg: "cannot open file.", Err: fs.ErrNotExist}
	wrapped := fmt.Errorf("loading: %w", err)

	if !errors.Is(wrapped, ErrInvalidInputFile) {
		t.Error("expected ErrInvalidInputFile")
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("expected the cause to be reachable")
	}
	if errors.Is(wrapped, ErrSyntax) {
		t.Error("unexpected ErrSyntax")
	}
}

func TestAt(t *testing.T) {
	pos := Pos{Filename: "a.h", Line: 1, Column: 2}

	err := At(ErrOutOfMemory, pos)
	if KindOf(err) != OutOfMemory || !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("At(ErrOutOfMemory) = %v", err)
	}
	if err.Error() != "at a.h:1:2: error: out of memory." {
		t.Errorf("unexpected message %q", err.Error())
	}

	orig := Errorf(SyntaxError, Pos{Filename: "b.h", Line: 9, Column: 9}, "x")
	if At(orig, pos) != error(orig) {
		t.Error("At must not reposition an existing *Error")
	}
	if At(nil, pos) != nil {
		t.Error("At(nil) must be nil")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, OK},
		{ErrOutOfMemory, OutOfMemory},
		{fmt.Errorf("wrap: %w", ErrSyntax), SyntaxError},
		{Errorf(SyntaxError, Pos{}, "x"), SyntaxError},
		{errors.New("read failed"), InvalidInputFile},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if SyntaxError.String() != "syntax error" || Kind(42).String() != "?" || Kind(-1).String() != "?" {
		t.Error("unexpected Kind names")
	}
}
