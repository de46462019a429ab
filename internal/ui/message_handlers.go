// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package ui

// --- Message Handlers ---

// handleProjectsSaved surfaces save failures in the footer; the browser keeps
// running either way.
func (m *model) handleProjectsSaved(msg projectsSavedMsg) {
	if msg.err != nil {
		m.lastError = msg.err
		m.statusMessage = ""
		return
	}
	m.lastError = nil
}
