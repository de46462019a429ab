// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

// Package store persists the project registry as a YAML file so that
// separate invocations (register, then start) see the same projects.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"nttt/internal/logger"
	"nttt/internal/registry"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of the state file.
type document struct {
	Projects []registry.Entry `yaml:"projects"`
}

// File is a YAML-backed project store. Writes are serialized; snapshots saved
// through SaveSnapshot carry a generation and older generations never
// overwrite newer ones.
type File struct {
	Path string

	mu      sync.Mutex
	written uint64 // generation of the last snapshot written
}

// NewFile returns a store writing to path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads all saved projects. A missing file is an empty store.
func (f *File) Load() ([]registry.Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", f.Path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", f.Path, err)
	}
	return doc.Projects, nil
}

// LoadInto replaces the contents of reg with the saved projects.
func (f *File) LoadInto(reg *registry.Registry) error {
	entries, err := f.Load()
	if err != nil {
		return err
	}
	reg.Replace(entries)
	return nil
}

// Save writes entries, replacing the previous file atomically.
func (f *File) Save(entries []registry.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeLocked(entries)
}

// SaveSnapshot writes entries taken at generation gen. A snapshot no newer
// than the last one written is dropped.
func (f *File) SaveSnapshot(gen uint64, entries []registry.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen <= f.written {
		logger.Debug("dropping stale projects snapshot", "generation", gen, "written", f.written)
		return nil
	}
	if err := f.writeLocked(entries); err != nil {
		return err
	}
	f.written = gen
	return nil
}

// writeLocked must be called with f.mu held.
func (f *File) writeLocked(entries []registry.Entry) error {
	if entries == nil {
		entries = []registry.Entry{}
	}
	data, err := yaml.Marshal(document{Projects: entries})
	if err != nil {
		return fmt.Errorf("failed to marshal projects to YAML: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".projects-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary state file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0640); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", f.Path, err)
	}
	return nil
}

// SaveFrom writes a snapshot of reg.
func (f *File) SaveFrom(reg *registry.Registry) error {
	return f.Save(reg.Entries())
}
