package rtc

import (
	"fmt"
	"sort"
	"sync"
)

// A factory creates a device from a backend-specific config string.
type Factory func(config string) (Device, error)

// Information about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

type backend struct {
	info    BackendInfo
	factory Factory
}

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]backend)
)

// Register a backend under the given name. It panics if the name is taken
// or the factory is nil.
func Register(name, description string, factory Factory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	if factory == nil {
		panic("rtc: Register factory is nil")
	}
	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("%s: %s", ErrDuplicateName.Error(), name))
	}
	backends[name] = backend{
		info:    BackendInfo{Name: name, Description: description},
		factory: factory,
	}
}

// List registered backends sorted by name.
func Backends() []BackendInfo {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	list := make([]BackendInfo, 0, len(backends))
	for _, b := range backends {
		list = append(list, b.info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Create a device using the named backend.
func NewDevice(name, config string) (Device, error) {
	backendsMu.RLock()
	b, exists := backends[name]
	backendsMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b.factory(config)
}
