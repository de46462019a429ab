// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package ui

import (
	"fmt"

	"nttt/internal/logger"
	"nttt/internal/registry"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Update Handlers ---

func (m *model) handleProjectListKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.currentState = stateTerminated
		return tea.Quit
	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(registry.DirectionUp)
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(registry.DirectionDown)
	case key.Matches(msg, m.keymap.Delete):
		return m.deleteSelected()
	}
	return nil
}

// moveCursor navigates against a fresh snapshot; with no projects it is a no-op.
func (m *model) moveCursor(dir registry.Direction) {
	m.entries = m.registry.Entries()
	m.cursor, m.hasSelection = registry.NextIndex(m.cursor, len(m.entries), dir)
	m.ensureCursorVisible()
}

// deleteSelected removes the highlighted project and clamps the cursor to
// the shrunken list in the same step.
func (m *model) deleteSelected() tea.Cmd {
	if !m.hasSelection {
		return nil
	}
	removed, left, ok := m.registry.RemoveAt(m.cursor)
	if !ok {
		m.refresh()
		return nil
	}
	m.entries = left
	m.cursor, m.hasSelection = registry.Clamp(m.cursor, len(left))
	m.ensureCursorVisible()

	logger.Info("project removed", "name", removed.Name, "port", removed.Port)
	m.statusMessage = fmt.Sprintf("Eliminado: %s", removed.Name)
	m.lastError = nil

	if m.saver == nil {
		return nil
	}
	m.saveGen++
	return saveProjectsCmd(m.saver, m.saveGen, left)
}

// ensureCursorVisible scrolls the list so the cursor row is on screen.
func (m *model) ensureCursorVisible() {
	rows := m.visibleRows()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if maxOffset := len(m.entries) - rows; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

// visibleRows is the number of list rows that fit in the panel, or 0 when
// the window size is not known yet (render everything).
func (m *model) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-borderHeight-titleHeight-lipgloss.Height(m.renderFooter()), 1)
}
