package cabs

import (
	"fmt"

	"github.com/raymyers/cparse/pkg/ctypes"
	"gopkg.in/yaml.v3"
)

// unitView is the YAML shape of a Unit
type unitView struct {
	Decls []declView `yaml:"decls"`
}

type declView struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Type   *typeView  `yaml:"type,omitempty"`
	Offset *int64     `yaml:"offset,omitempty"`
	Fields []declView `yaml:"fields,omitempty"`
}

type typeView struct {
	Kind      string    `yaml:"kind"`
	Primitive string    `yaml:"primitive,omitempty"`
	Name      string    `yaml:"name,omitempty"`
	Size      *int64    `yaml:"size,omitempty"`
	Elem      *typeView `yaml:"elem,omitempty"`
}

// MarshalYAML renders a unit as a YAML document
func MarshalYAML(u *Unit) ([]byte, error) {
	view := unitView{Decls: make([]declView, 0, len(u.Decls))}
	for _, d := range u.Decls {
		view.Decls = append(view.Decls, declToView(d))
	}
	return yaml.Marshal(view)
}

func declToView(d Decl) declView {
	switch d := d.(type) {
	case Variable:
		return declView{Kind: "Variable", Name: d.Name, Type: typeToView(d.Type)}
	case Field:
		offset := d.Offset
		return declView{Kind: "Field", Name: d.Name, Type: typeToView(d.Type), Offset: &offset}
	case Struct:
		v := declView{Kind: "Struct", Name: d.Name}
		for _, f := range d.Fields {
			v.Fields = append(v.Fields, declToView(f))
		}
		return v
	}
	return declView{Kind: fmt.Sprintf("%T", d)}
}

func typeToView(t ctypes.Type) *typeView {
	switch t := t.(type) {
	case ctypes.Tprimitive:
		return &typeView{Kind: "Primitive", Primitive: t.Kind.String()}
	case ctypes.Tpointer:
		return &typeView{Kind: "Pointer", Elem: typeToView(t.Elem)}
	case ctypes.Tarray:
		size := t.Size
		return &typeView{Kind: "Array", Size: &size, Elem: typeToView(t.Elem)}
	case ctypes.Tstruct:
		return &typeView{Kind: "Struct", Name: t.Name}
	case ctypes.Tenum:
		return &typeView{Kind: "Enum", Name: t.Name}
	}
	return nil
}

func typeString(t ctypes.Type) string {
	if t == nil {
		return "?"
	}
	return t.String()
}
