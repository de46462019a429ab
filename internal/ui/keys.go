// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

// This file defines the keyboard bindings for the project browser.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up     key.Binding // Move cursor up, wrapping to the last row
	Down   key.Binding // Move cursor down, wrapping to the first row
	Delete key.Binding // Remove the highlighted project
	Quit   key.Binding // Exit the browser
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "subir"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "bajar"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "borrar"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "salir"),
	),
}

// helpBindings lists the bindings shown in the footer, in display order.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Quit}
}
