// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

// Package ui implements the interactive project browser: a Bubble Tea model
// that lists registered projects, lets the user move a highlighted cursor
// through them, and deletes the highlighted one.
package ui

import (
	"time"

	"nttt/internal/config"
	"nttt/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a browser model.
type Options struct {
	// Saver persists the registry after each delete. Nil means ephemeral.
	Saver Saver
	// PollInterval is how often the registry is re-read. Zero means the default.
	PollInterval time.Duration
}

type model struct {
	registry     *registry.Registry
	saver        Saver
	keymap       KeyMap
	pollInterval time.Duration
	currentState state

	entries      []registry.Entry // snapshot rendered by View
	cursor       int
	hasSelection bool
	offset       int // index of the first visible row

	saveGen uint64 // generation of the last snapshot handed to the saver

	statusMessage string
	lastError     error
	width         int
	height        int
}

// NewModel returns a browser over reg with the cursor on the first project.
func NewModel(reg *registry.Registry, opts Options) model {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	m := model{
		registry:     reg,
		saver:        opts.Saver,
		keymap:       DefaultKeyMap,
		pollInterval: interval,
		currentState: stateRunning,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.pollInterval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.currentState == stateTerminated {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
	case tea.KeyMsg:
		cmd = m.handleProjectListKeys(msg)
	case tickMsg:
		m.refresh()
		cmd = tickCmd(m.pollInterval)
	case projectsSavedMsg:
		m.handleProjectsSaved(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if m.currentState == stateTerminated {
		return ""
	}
	return m.renderProjectListView()
}

// Selected returns the highlighted entry, if any.
func (m model) Selected() (registry.Entry, bool) {
	if !m.hasSelection || m.cursor >= len(m.entries) {
		return registry.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Flush saves the registry as it stands, superseding any snapshot still
// being written in the background. It is a no-op for ephemeral sessions and
// when nothing was deleted.
func (m model) Flush() error {
	if m.saver == nil || m.saveGen == 0 {
		return nil
	}
	return m.saver.SaveSnapshot(m.saveGen+1, m.registry.Entries())
}

// refresh re-reads the registry and clamps the cursor to the new length.
func (m *model) refresh() {
	m.entries = m.registry.Entries()
	m.cursor, m.hasSelection = registry.Clamp(m.cursor, len(m.entries))
	m.ensureCursorVisible()
}
