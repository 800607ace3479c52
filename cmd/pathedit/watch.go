package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/pathedit"
)

// watchFiles calls rebuild whenever one of files changes, once the changes
// have been quiet for debounce. Directories are watched rather than the
// files themselves so that editors replacing a file on save are noticed.
// Empty names are skipped. watchFiles returns when ctx is done.
func watchFiles(ctx context.Context, files []string, debounce time.Duration, rebuild func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	wanted := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if len(wanted) == 0 {
		return fmt.Errorf("watch: nothing to watch, pass -script or -config")
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !wanted[abs] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pathedit.Logger().Debug("pathedit: change detected", "file", ev.Name, "op", ev.Op.String())
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)

		case <-timer.C:
			if err := rebuild(); err != nil {
				log.Print(err)
			}
		}
	}
}
