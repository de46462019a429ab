// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

// Package registry holds the in-memory mapping of project names to ports.
// A Registry is created once per process and passed explicitly to the
// command handlers and the TUI; it is never a package-level global.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// ErrNotFound is returned when a project name is not registered.
var ErrNotFound = errors.New("project not registered")

// Entry is a single registered project.
type Entry struct {
	Name string `yaml:"name"`
	Port uint16 `yaml:"port"`
}

// String renders the entry the way it appears in lists.
func (e Entry) String() string {
	return fmt.Sprintf("%s - Puerto %d", e.Name, e.Port)
}

// Registry maps project names to ports. Every method takes the lock exactly
// once, so a single call is atomic with respect to other callers.
type Registry struct {
	mu       sync.Mutex
	projects map[string]uint16
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{projects: make(map[string]uint16)}
}

// Set inserts or overwrites the port for name.
func (r *Registry) Set(name string, port uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[name] = port
}

// Get returns the port registered for name.
func (r *Registry) Get(name string) (uint16, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	port, ok := r.projects[name]
	return port, ok
}

// Remove deletes name. It returns ErrNotFound if name was not registered.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(r.projects, name)
	return nil
}

// RemoveAt deletes the entry at ordinal position pos in enumeration order.
// It returns the removed entry, a snapshot of the entries left (taken under
// the same lock), and whether anything was removed. An out-of-range pos is a
// no-op.
func (r *Registry) RemoveAt(pos int) (Entry, []Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.sortedLocked()
	if pos < 0 || pos >= len(entries) {
		return Entry{}, entries, false
	}
	removed := entries[pos]
	delete(r.projects, removed.Name)
	return removed, slices.Delete(entries, pos, pos+1), true
}

// Len returns the number of registered projects.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.projects)
}

// Entries returns a snapshot of all projects in enumeration order
// (ascending by name).
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked()
}

// Replace discards the current contents and loads entries. Later entries win
// when names repeat.
func (r *Registry) Replace(entries []Entry) {
	projects := make(map[string]uint16, len(entries))
	for _, e := range entries {
		projects[e.Name] = e.Port
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = projects
}

// sortedLocked must be called with r.mu held.
func (r *Registry) sortedLocked() []Entry {
	entries := make([]Entry, 0, len(r.projects))
	for name, port := range r.projects {
		entries = append(entries, Entry{Name: name, Port: port})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
