package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// format selects how a unit is rendered
type format string

const (
	formatText format = "text"
	formatYAML format = "yaml"
)

var _ pflag.Value = (*format)(nil)

// String implements pflag.Value
func (f *format) String() string { return string(*f) }

// Set implements pflag.Value
func (f *format) Set(s string) error {
	switch format(s) {
	case formatText, formatYAML:
		*f = format(s)
		return nil
	}
	return fmt.Errorf("unknown format %q (want text or yaml)", s)
}

// Type implements pflag.Value
func (f *format) Type() string { return "format" }
