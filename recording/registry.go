package recording

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory returns a fresh backend, ready for Begin.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes an output format available under name. The svg and raster
// backend packages call it from init, so a blank import is enough to enable
// a format:
//
//	import _ "github.com/fedorabots/emblem/recording/backends/svg"
//
// It panics on a nil factory or a name that is already registered.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: nil factory for backend " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, taken := backends[name]; taken {
		panic("recording: backend " + name + " registered twice")
	}
	backends[name] = factory
}

// Unregister drops a format. Tests use it to undo Register.
func Unregister(name string) {
	registryMu.Lock()
	delete(backends, name)
	registryMu.Unlock()
}

// NewBackend returns a new backend for the named format, as selected by the
// emblemgen -backend flag.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory := backends[name]
	registryMu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends lists the registered format names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// IsRegistered reports whether name can be passed to NewBackend.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return backends[name] != nil
}
