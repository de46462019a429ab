// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package ui

import (
	"time"

	"nttt/internal/logger"
	"nttt/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// Saver persists registry snapshots. gen increases with every snapshot and a
// Saver must never let an older snapshot overwrite a newer one. A nil Saver
// keeps the session in memory only.
type Saver interface {
	SaveSnapshot(gen uint64, entries []registry.Entry) error
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// saveProjectsCmd writes a snapshot taken at delete time in the background.
func saveProjectsCmd(saver Saver, gen uint64, entries []registry.Entry) tea.Cmd {
	return func() tea.Msg {
		err := saver.SaveSnapshot(gen, entries)
		if err != nil {
			logger.Error("failed to save projects", "error", err)
		}
		return projectsSavedMsg{err: err}
	}
}
