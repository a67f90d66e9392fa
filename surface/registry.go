// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"cmp"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
)

// Factory creates a Surface. It validates opts itself.
type Factory func(opts Options) (Surface, error)

// RegistryEntry is a registered backend.
type RegistryEntry struct {
	Name string

	// Priority orders backends; higher is preferred. The built-in
	// software backend uses 10, leaving room above it for GPU backends.
	Priority int

	Factory Factory

	// Available reports whether the backend can run on this machine. It
	// is consulted on every lookup.
	Available func() bool
}

// byPreference orders entries by descending priority, then by name.
func byPreference(a, b any) int {
	ea, eb := a.(*RegistryEntry), b.(*RegistryEntry)
	if c := cmp.Compare(eb.Priority, ea.Priority); c != 0 {
		return c
	}
	return cmp.Compare(ea.Name, eb.Name)
}

// Registry holds surface backends in preference order. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*RegistryEntry
	ordered *treeset.Set // of *RegistryEntry, by byPreference
}

var globalRegistry = NewRegistry()

// NewRegistry creates an empty Registry. Most callers use the package
// functions, which share a registry holding the software backend.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]*RegistryEntry),
		ordered: treeset.NewWith(byPreference),
	}
}

// Register adds a backend to the shared registry. See Registry.Register.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the shared registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns every backend in the shared registry, preferred first.
func List() []string {
	return globalRegistry.List()
}

// Available returns the shared registry's usable backends, preferred
// first.
func Available() []string {
	return globalRegistry.Available()
}

// New creates a surface on the best usable backend of the shared
// registry.
func New(opts Options) (Surface, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a surface on the named backend of the shared
// registry.
func NewByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend, replacing any backend of the same name. A nil
// available means always available.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	e := &RegistryEntry{Name: name, Priority: priority, Factory: factory, Available: available}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byName[name]; ok {
		r.ordered.Remove(old)
	}
	r.byName[name] = e
	r.ordered.Add(e)
}

// Unregister removes the named backend, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byName[name]; ok {
		r.ordered.Remove(old)
		delete(r.byName, name)
	}
}

// List returns all backend names, preferred first.
func (r *Registry) List() []string {
	return r.names(false)
}

// Available returns the names of usable backends, preferred first.
func (r *Registry) Available() []string {
	return r.names(true)
}

// Get returns a copy of the named backend's entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	cp := *e
	return &cp, true
}

// New tries the usable backends in preference order and returns the
// first surface created. If every factory fails, the last error is
// returned.
func (r *Registry) New(opts Options) (Surface, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a surface on the named backend.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	e, ok := r.byName[name]
	r.mu.RUnlock()

	switch {
	case !ok:
		return nil, &BackendNotFoundError{Name: name}
	case !e.Available():
		return nil, &BackendUnavailableError{Name: name}
	}
	return e.Factory(opts)
}

func (r *Registry) names(onlyAvailable bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, r.ordered.Size())
	for it := r.ordered.Iterator(); it.Next(); {
		e := it.Value().(*RegistryEntry)
		if onlyAvailable && !e.Available() {
			continue
		}
		names = append(names, e.Name)
	}
	return names
}

func init() {
	Register(SoftwareBackend, 10, func(opts Options) (Surface, error) {
		return NewSoftware(opts)
	}, nil)
}
