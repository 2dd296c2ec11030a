package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchFiles calls fn for every file once, then again each time the file is
// written or replaced, until ctx is done. Parent directories are watched so
// that editors which save by renaming over the file are still seen.
func watchFiles(ctx context.Context, filenames []string, log *slog.Logger, fn func(string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]string) // cleaned path -> name as given
	dirs := make(map[string]bool)
	for _, name := range filenames {
		path := filepath.Clean(name)
		watched[path] = name
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	for _, name := range filenames {
		fn(name)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, ok := watched[filepath.Clean(ev.Name)]
			if !ok || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("file changed", slog.String("file", name), slog.String("op", ev.Op.String()))
			fn(name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", slog.Any("err", err))
		}
	}
}
