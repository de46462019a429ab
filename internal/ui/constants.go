// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package ui

// state represents the lifecycle of the project browser.
type state int

const (
	stateRunning state = iota
	stateTerminated
)

const (
	panelTitle = "Proyectos"

	borderHeight = 2 // Top and bottom border of the main panel.
	titleHeight  = 1 // Panel title line.

	selectedMarker   = "> "
	unselectedMarker = "  "
)
