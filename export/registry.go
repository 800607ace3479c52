package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
type BackendFactory func() Backend

type registration struct {
	ext     string
	factory BackendFactory
}

var (
	registryMu sync.RWMutex
	backends   = make(map[string]registration)
	// byExt maps a lower-case file extension to the backend owning it.
	byExt = make(map[string]string)
)

// Register makes a backend available under name. ext is the file extension
// the backend writes, including the dot (".png"); output paths with that
// extension resolve to the backend in BackendForPath. An empty ext
// registers a backend that is only reachable by name.
//
// Register is meant to be called from init() of backend packages. It
// panics on a nil factory, an empty name, a malformed extension, or a name
// or extension that is already taken.
func Register(name, ext string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if name == "" {
		panic("export: Register name is empty")
	}
	if _, dup := backends[name]; dup {
		panic("export: Register called twice for " + name)
	}
	ext = strings.ToLower(ext)
	if ext != "" {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			panic(fmt.Sprintf("export: Register %s: malformed extension %q", name, ext))
		}
		if owner, dup := byExt[ext]; dup {
			panic(fmt.Sprintf("export: Register %s: extension %s already belongs to %s", name, ext, owner))
		}
		byExt[ext] = name
	}
	backends[name] = registration{ext: ext, factory: factory}
}

// Unregister removes a backend and its extension from the registry.
// Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if reg, ok := backends[name]; ok && reg.ext != "" {
		delete(byExt, reg.ext)
	}
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	reg, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: unknown backend %q (forgotten import?)", name)
	}
	return reg.factory(), nil
}

// BackendForPath returns the backend registered for the extension of path.
// The extension is matched case-insensitively.
func BackendForPath(path string) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := byExt[strings.ToLower(filepath.Ext(path))]
	return name, ok
}

// Extension returns the file extension a backend registered with.
func Extension(name string) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := backends[name]
	return reg.ext, ok
}

// Backends returns the names of all registered backends, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
