package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
)

// FileWatcher polls the codebase roots for descriptor changes and calls
// OnChange after every scan that added, modified or removed a file.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	OnChange func(changed []string)
}

func NewFileWatcher(c *Codebase, pollInterval time.Duration) *FileWatcher {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		pollInterval: pollInterval,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan performs one polling round and returns the changed paths.
func (w *FileWatcher) Scan() []string {
	currentFiles := make(map[string]bool)
	var changed []string

	for _, root := range w.codebase.RootDirs() {
		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if path != root && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !java.IsDescriptorFile(path) {
				return nil
			}

			currentFiles[path] = true

			lastMod, known := w.modTimes[path]
			if !known || info.ModTime().After(lastMod) {
				w.modTimes[path] = info.ModTime()
				w.codebase.ScanFile(path)
				changed = append(changed, path)
			}
			return nil
		})
	}

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			changed = append(changed, path)
		}
	}

	if len(changed) > 0 && w.OnChange != nil {
		w.OnChange(changed)
	}
	return changed
}
