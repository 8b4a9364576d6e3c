package codebase

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dialoggen.codebase")

// Codebase holds the class descriptors found under a set of directories.
type Codebase struct {
	mu       sync.RWMutex
	rootDirs []string
	files    map[string]*FileInfo
	index    *java.Index
}

type FileInfo struct {
	Path     string
	Classes  []*java.ClassModel
	ParseErr error
}

func New(rootDirs ...string) *Codebase {
	return &Codebase{
		rootDirs: rootDirs,
		files:    make(map[string]*FileInfo),
		index:    java.NewIndex(),
	}
}

func (c *Codebase) RootDirs() []string {
	return c.rootDirs
}

// ScanAll loads every descriptor below the root directories. Files that
// fail to parse are kept with their error and reported by Errors.
func (c *Codebase) ScanAll() error {
	for _, root := range c.rootDirs {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != root && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if java.IsDescriptorFile(path) {
				c.ScanFile(path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateFileLocked(path, content)
}

func (c *Codebase) updateFileLocked(path string, content []byte) error {
	var classes []*java.ClassModel
	var parseErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		classes, parseErr = java.ClassModelsFromJSON(bytes.NewReader(content))
	default:
		classes, parseErr = java.ClassModelsFromYAML(bytes.NewReader(content))
	}
	if parseErr != nil {
		log.Warningf("skipping %s: %s", path, parseErr)
	}
	for _, cls := range classes {
		if cls.SourceFile == "" {
			cls.SourceFile = path
		}
	}

	c.files[path] = &FileInfo{
		Path:     path,
		Classes:  classes,
		ParseErr: parseErr,
	}

	c.rebuildIndexLocked()
	return parseErr
}

func (c *Codebase) rebuildIndexLocked() {
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	idx := java.NewIndex()
	for _, path := range paths {
		for _, cls := range c.files[path].Classes {
			idx.Add(cls)
		}
	}
	c.index = idx
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
	c.rebuildIndexLocked()
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Index returns the current class index. The returned index is replaced,
// never mutated, when files change.
func (c *Codebase) Index() *java.Index {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

func (c *Codebase) FindClass(name string) *java.ClassModel {
	return c.Index().Lookup(name)
}

// Errors returns the parse errors of all scanned files keyed by path.
func (c *Codebase) Errors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]error)
	for path, f := range c.files {
		if f.ParseErr != nil {
			result[path] = f.ParseErr
		}
	}
	return result
}
