// Package ctypes defines the C types a declaration can carry
package ctypes

import "strconv"

// Type is the interface for all C types
type Type interface {
	implType()
	String() string
}

// PrimitiveKind enumerates the built-in arithmetic types
type PrimitiveKind int

const (
	Char PrimitiveKind = iota // plain char, distinct from both signed and unsigned char
	SignedChar
	UnsignedChar
	SignedShort
	UnsignedShort
	SignedInt
	UnsignedInt
	SignedLong
	UnsignedLong
	SignedLongLong
	UnsignedLongLong
	Float
	Double
	LongDouble

	primitiveKindCount
)

var primitiveNames = [primitiveKindCount]string{
	Char:             "char",
	SignedChar:       "signed char",
	UnsignedChar:     "unsigned char",
	SignedShort:      "signed short",
	UnsignedShort:    "unsigned short",
	SignedInt:        "signed int",
	UnsignedInt:      "unsigned int",
	SignedLong:       "signed long",
	UnsignedLong:     "unsigned long",
	SignedLongLong:   "signed long long",
	UnsignedLongLong: "unsigned long long",
	Float:            "float",
	Double:           "double",
	LongDouble:       "long double",
}

func (k PrimitiveKind) String() string {
	if k >= 0 && k < primitiveKindCount {
		return primitiveNames[k]
	}
	return "?"
}

// PrimitiveKinds returns every primitive kind in declaration order
func PrimitiveKinds() []PrimitiveKind {
	kinds := make([]PrimitiveKind, primitiveKindCount)
	for i := range kinds {
		kinds[i] = PrimitiveKind(i)
	}
	return kinds
}

// Tprimitive represents a built-in arithmetic type
type Tprimitive struct {
	Kind PrimitiveKind
}

// Tpointer represents pointer types
type Tpointer struct {
	Elem Type
}

// Tarray represents array types with a literal extent
type Tarray struct {
	Elem Type
	Size int64
}

// Tstruct refers to a struct declaration by name
type Tstruct struct {
	Name string
}

// Tenum refers to an enum declaration by name. No declaration produces one yet.
type Tenum struct {
	Name string
}

// Marker methods for Type interface
func (Tprimitive) implType() {}
func (Tpointer) implType()   {}
func (Tarray) implType()     {}
func (Tstruct) implType()    {}
func (Tenum) implType()      {}

// String methods for types

func (t Tprimitive) String() string { return t.Kind.String() }

func (t Tpointer) String() string {
	if t.Elem == nil {
		return "? *"
	}
	return t.Elem.String() + " *"
}

func (t Tarray) String() string {
	if t.Elem == nil {
		return "? [" + strconv.FormatInt(t.Size, 10) + "]"
	}
	return t.Elem.String() + " [" + strconv.FormatInt(t.Size, 10) + "]"
}

func (t Tstruct) String() string { return "struct " + t.Name }

func (t Tenum) String() string { return "enum " + t.Name }

// Common type constructors

// Primitive returns the primitive type of the given kind
func Primitive(kind PrimitiveKind) Type {
	return Tprimitive{Kind: kind}
}

// Int returns the signed int type
func Int() Type {
	return Tprimitive{Kind: SignedInt}
}

// Pointer returns a pointer to the given type
func Pointer(elem Type) Type {
	return Tpointer{Elem: elem}
}

// Array returns an array type
func Array(elem Type, size int64) Type {
	return Tarray{Elem: elem, Size: size}
}

// Equal checks if two types are equal
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch ta := a.(type) {
	case Tprimitive:
		tb, ok := b.(Tprimitive)
		return ok && ta.Kind == tb.Kind
	case Tpointer:
		tb, ok := b.(Tpointer)
		return ok && Equal(ta.Elem, tb.Elem)
	case Tarray:
		tb, ok := b.(Tarray)
		return ok && ta.Size == tb.Size && Equal(ta.Elem, tb.Elem)
	case Tstruct:
		tb, ok := b.(Tstruct)
		return ok && ta.Name == tb.Name
	case Tenum:
		tb, ok := b.(Tenum)
		return ok && ta.Name == tb.Name
	}
	return false
}
