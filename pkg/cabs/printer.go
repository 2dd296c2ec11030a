// Package cabs provides AST printing functionality
package cabs

import (
	"fmt"
	"io"
)

// Printer outputs the AST in a human-readable format
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintUnit prints every declaration of a unit
func (p *Printer) PrintUnit(u *Unit) {
	for _, d := range u.Decls {
		p.printDecl(d)
	}
}

func (p *Printer) printDecl(d Decl) {
	switch d := d.(type) {
	case Struct:
		p.printStruct(d)
	case Field:
		p.printField(d)
	case Variable:
		fmt.Fprintf(p.w, "%s: %s\n", d.Name, typeString(d.Type))
	default:
		fmt.Fprintf(p.w, "/* unknown declaration %T */\n", d)
	}
}

func (p *Printer) printStruct(s Struct) {
	fmt.Fprintf(p.w, "struct %s\n", s.Name)
	for _, f := range s.Fields {
		fmt.Fprint(p.w, "  ")
		p.printField(f)
	}
}

func (p *Printer) printField(f Field) {
	fmt.Fprintf(p.w, "%d %s: %s\n", f.Offset, f.Name, typeString(f.Type))
}
