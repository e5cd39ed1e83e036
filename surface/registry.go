// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Factory builds a surface of the requested size.
type Factory func(opts Options) (Surface, error)

type entry struct {
	priority  int
	factory   Factory
	available func() bool
}

// Registry maps surface names to factories. The zero value is ready to use.
//
// Packages that provide a surface register it from init:
//
//	func init() {
//	    surface.Register("recording", 0, recordingFactory, nil)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var defaultRegistry Registry

// Register adds a named surface to the default registry. A nil available
// means always available. Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// List returns the names in the default registry, preferred first.
func List() []string {
	return defaultRegistry.List()
}

// NewSurface creates a surface from the most preferred available entry of
// the default registry.
func NewSurface(opts Options) (Surface, error) {
	return defaultRegistry.NewSurface(opts)
}

// NewSurfaceByName creates the named surface from the default registry.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, opts)
}

// Register adds a named surface to r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]entry)
	}
	r.entries[name] = entry{priority: priority, factory: factory, available: available}
}

// List returns the registered names by descending priority, ties by name.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(false)
}

// NewSurface tries every available entry by descending priority and
// returns the first surface built. If every factory fails the last error
// is returned.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	r.mu.RLock()
	names := r.names(true)
	r.mu.RUnlock()

	err := ErrNoSurface
	for _, name := range names {
		var s Surface
		if s, err = r.NewSurfaceByName(name, opts); err == nil {
			return s, nil
		}
	}
	return nil, err
}

// NewSurfaceByName creates the surface registered as name.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	known := r.names(false)
	r.mu.RUnlock()

	switch {
	case !ok:
		return nil, &UnknownSurfaceError{Name: name, Known: known}
	case !e.available():
		return nil, fmt.Errorf("surface: %q: %w", name, ErrUnavailable)
	}
	return e.factory(opts)
}

// names must be called with r.mu held.
func (r *Registry) names(onlyAvailable bool) []string {
	names := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if !onlyAvailable || e.available() {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(r.entries[b].priority, r.entries[a].priority); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

var (
	// ErrNoSurface is returned by NewSurface when nothing is registered or
	// available.
	ErrNoSurface = errors.New("surface: no surface available")

	// ErrUnavailable is returned for a registered surface whose availability
	// check fails.
	ErrUnavailable = errors.New("surface: unavailable")
)

// UnknownSurfaceError is returned for a name that was never registered.
type UnknownSurfaceError struct {
	Name  string
	Known []string
}

func (e *UnknownSurfaceError) Error() string {
	return fmt.Sprintf("surface: unknown surface %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
}
