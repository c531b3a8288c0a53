package recording

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func() Backend

type registration struct {
	factory    BackendFactory
	extensions []string
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]registration)
)

// Register registers a backend factory with the given name and the output
// file extensions it produces (".png", ".svg"). Backend packages call it
// from init(), following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return New()
//	    }, ".svg")
//	}
//
// Register panics if the factory is nil or the name is already taken.
func Register(name string, factory BackendFactory, extensions ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		exts[i] = normalizeExt(ext)
	}
	backends[name] = registration{factory: factory, extensions: exts}
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
//
//	import _ "github.com/gogpu/helix/svg" // Register SVG backend
//
//	backend, err := recording.NewBackend("svg")
//
// The error for an unregistered name hints at a forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	reg, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return reg.factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// BackendFor returns the name of the backend that writes files with the
// extension of path. When several backends claim the same extension the
// alphabetically first one wins.
func BackendFor(path string) (string, bool) {
	ext := normalizeExt(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	for _, name := range Backends() {
		registryMu.RLock()
		reg := backends[name]
		registryMu.RUnlock()
		for _, e := range reg.extensions {
			if e == ext {
				return name, true
			}
		}
	}
	return "", false
}

// Extensions returns the file extensions claimed by the named backend.
func Extensions(name string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := backends[name]
	if !ok {
		return nil
	}
	return append([]string(nil), reg.extensions...)
}

// Backends returns the registered backend names in alphabetical order.
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

// Count returns the number of registered backends.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(backends)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
