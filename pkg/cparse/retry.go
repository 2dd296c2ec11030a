package cparse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/raymyers/cparse/pkg/cabs"
	"github.com/raymyers/cparse/pkg/diag"
)

// ParseFileGrowing parses filename starting with an arena of initial bytes
// and doubles it after every OutOfMemory result, re-running the whole parse
// each time. It gives up once the arena would exceed limit. The returned
// buffer backs the unit's spellings.
func ParseFileGrowing(filename string, initial, limit int, cfg *Config) (*cabs.Unit, []byte, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("arena limit must be positive, got %d", limit)
	}
	if initial <= 0 {
		initial = 1
	}
	log := cfg.logger()

	size := min(initial, limit)
	for {
		buf := make([]byte, size)
		unit, err := ParseFile(filename, buf, cfg)
		if err == nil {
			return unit, buf, nil
		}
		if !errors.Is(err, diag.ErrOutOfMemory) || size >= limit {
			return nil, nil, err
		}
		next := limit
		if size <= limit/2 {
			next = size * 2
		}
		log.Debug("arena exhausted, retrying",
			slog.String("file", filename),
			slog.Int("size", size),
			slog.Int("next", next),
		)
		size = next
	}
}
