// Package cabs defines the declaration tree produced by the parser
package cabs

import "github.com/raymyers/cparse/pkg/ctypes"

// Node is the base interface for all AST nodes
type Node interface {
	implCabsNode()
}

// Decl is the interface for declarations
type Decl interface {
	Node
	implDecl()
	DeclName() string
}

// Variable represents an object declaration: type name;
type Variable struct {
	Name string
	Type ctypes.Type
}

// Field represents a struct member. Offset is not computed by the parser and
// is always 0.
type Field struct {
	Name   string
	Type   ctypes.Type
	Offset int64
}

// Struct represents a struct definition with its fields in source order
type Struct struct {
	Name   string
	Fields []Field
}

// Unit is the root of a parsed file: its top-level declarations in source order
type Unit struct {
	Decls []Decl
}

// Structs returns the struct declarations of the unit in source order
func (u *Unit) Structs() []Struct {
	var out []Struct
	for _, d := range u.Decls {
		if s, ok := d.(Struct); ok {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the top-level declaration with the given name
func (u *Unit) Lookup(name string) (Decl, bool) {
	for _, d := range u.Decls {
		if d.DeclName() == name {
			return d, true
		}
	}
	return nil, false
}

// Field returns the field with the given name
func (s Struct) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (d Variable) DeclName() string { return d.Name }
func (d Field) DeclName() string    { return d.Name }
func (d Struct) DeclName() string   { return d.Name }

// Marker methods for interface implementation
func (Variable) implCabsNode() {}
func (Variable) implDecl()     {}

func (Field) implCabsNode() {}
func (Field) implDecl()     {}

func (Struct) implCabsNode() {}
func (Struct) implDecl()     {}

// Equal reports whether two units have the same declarations, compared
// structurally
func Equal(a, b *Unit) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Decls) != len(b.Decls) {
		return false
	}
	for i := range a.Decls {
		if !DeclEqual(a.Decls[i], b.Decls[i]) {
			return false
		}
	}
	return true
}

// DeclEqual reports whether two declarations are structurally equal
func DeclEqual(a, b Decl) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch da := a.(type) {
	case Variable:
		db, ok := b.(Variable)
		return ok && da.Name == db.Name && ctypes.Equal(da.Type, db.Type)
	case Field:
		db, ok := b.(Field)
		return ok && fieldEqual(da, db)
	case Struct:
		db, ok := b.(Struct)
		if !ok || da.Name != db.Name || len(da.Fields) != len(db.Fields) {
			return false
		}
		for i := range da.Fields {
			if !fieldEqual(da.Fields[i], db.Fields[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func fieldEqual(a, b Field) bool {
	return a.Name == b.Name && a.Offset == b.Offset && ctypes.Equal(a.Type, b.Type)
}
