// Package diag defines the result protocol shared by the arena, lexer and
// parser: a parse either yields a unit or exactly one positioned error.
package diag

import (
	"errors"
	"fmt"
)

// Kind classifies the outcome of a parse attempt
type Kind int

const (
	OK Kind = iota
	OutOfMemory
	InvalidInputFile
	SyntaxError
)

func (k Kind) String() string {
	names := []string{"ok", "out of memory", "invalid input file", "syntax error"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Sentinels wrapped by every *Error of the matching kind
var (
	ErrOutOfMemory      = errors.New("out of memory")
	ErrInvalidInputFile = errors.New("invalid input file")
	ErrSyntax           = errors.New("syntax error")
)

func (k Kind) sentinel() error {
	switch k {
	case OutOfMemory:
		return ErrOutOfMemory
	case InvalidInputFile:
		return ErrInvalidInputFile
	case SyntaxError:
		return ErrSyntax
	}
	return nil
}

// Pos is a source position. Line and Column are 1-based; zero means unknown.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

func (p Pos) String() string {
	if p.Line == 0 {
		return p.Filename
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Error is the single diagnostic produced by a failed parse
type Error struct {
	Kind Kind
	Pos  Pos
	Msg  string
	Err  error // underlying cause, if any
}

// Errorf builds a positioned error of the given kind
func Errorf(kind Kind, pos Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("at %s: error: %s", e.Pos, e.Msg)
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// At attaches a position to err. A bare sentinel (as returned by the arena)
// becomes an *Error of the matching kind; an *Error is returned unchanged.
func At(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	switch {
	case errors.Is(err, ErrOutOfMemory):
		return &Error{Kind: OutOfMemory, Pos: pos, Msg: "out of memory."}
	case errors.Is(err, ErrSyntax):
		return &Error{Kind: SyntaxError, Pos: pos, Msg: err.Error(), Err: err}
	}
	return &Error{Kind: InvalidInputFile, Pos: pos, Msg: err.Error(), Err: err}
}

// KindOf reports the Kind carried by err
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	switch {
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrSyntax):
		return SyntaxError
	}
	return InvalidInputFile
}
