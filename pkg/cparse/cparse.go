// Package cparse parses the struct declarations of a C source file into a
// cabs.Unit whose nodes and spellings live in a caller-supplied buffer.
//
// A parse either returns a complete unit or a single *diag.Error; no partial
// tree is ever exposed. When the error is diag.OutOfMemory the caller may
// retry the whole parse with a larger buffer, see ParseFileGrowing.
package cparse

import (
	"io"
	"log/slog"
	"os"

	"github.com/raymyers/cparse/pkg/arena"
	"github.com/raymyers/cparse/pkg/cabs"
	"github.com/raymyers/cparse/pkg/diag"
	"github.com/raymyers/cparse/pkg/lexer"
	"github.com/raymyers/cparse/pkg/parser"
)

// Config carries the options of a parse request.
//
// IncludeDirs and Defines are accepted for callers that already collect
// preprocessor options; no preprocessing is performed and neither is
// consulted.
type Config struct {
	IncludeDirs []string
	Defines     []string
	Logger      *slog.Logger
}

func (c *Config) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// ParseFile parses filename using buf as the arena for the resulting unit.
// The unit's spellings alias buf, so buf must not be reused while the unit
// is in use.
func ParseFile(filename string, buf []byte, cfg *Config) (*cabs.Unit, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &diag.Error{
			Kind: diag.InvalidInputFile,
			Pos:  diag.Pos{Filename: filename},
			Msg:  "cannot open file.",
			Err:  err,
		}
	}
	defer f.Close()

	return Parse(f, filename, buf, cfg)
}

// Parse parses the source read from r. filename is only used in diagnostics.
func Parse(r io.Reader, filename string, buf []byte, cfg *Config) (*cabs.Unit, error) {
	log := cfg.logger().With(slog.String("file", filename))
	if cfg != nil && (len(cfg.IncludeDirs) > 0 || len(cfg.Defines) > 0) {
		log.Debug("preprocessor options ignored",
			slog.Any("include_dirs", cfg.IncludeDirs),
			slog.Any("defines", cfg.Defines),
		)
	}

	a := arena.New(buf)
	unit, err := parse(lexer.New(r, filename), a)
	if err != nil {
		log.Debug("parse failed",
			slog.String("kind", diag.KindOf(err).String()),
			slog.Int("arena_used", a.Used()),
			slog.Int("arena_cap", a.Cap()),
		)
		return nil, err
	}

	log.Debug("parse finished",
		slog.Int("decls", len(unit.Decls)),
		slog.Int("arena_used", a.Used()),
		slog.Int("arena_cap", a.Cap()),
	)
	return unit, nil
}

func parse(l *lexer.Lexer, a *arena.Arena) (*cabs.Unit, error) {
	p, err := parser.New(l, a)
	if err != nil {
		return nil, err
	}
	return p.ParseUnit()
}
