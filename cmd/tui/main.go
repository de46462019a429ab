// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package tui

import (
	"errors"
	"fmt"

	"nttt/internal/registry"
	"nttt/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// flusher is implemented by the browser model to save the final state once
// the program has stopped.
type flusher interface {
	Flush() error
}

// RunTUI runs the project browser over reg until the user exits. Bubble Tea
// restores the terminal on every exit path, including errors. Saves still
// pending when the loop ends are settled before RunTUI returns.
func RunTUI(reg *registry.Registry, opts ui.Options, programOpts ...tea.ProgramOption) error {
	m := ui.NewModel(reg, opts)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...)
	final, runErr := p.Run()
	if runErr != nil {
		runErr = fmt.Errorf("running project browser: %w", runErr)
	}

	var flushErr error
	if f, ok := final.(flusher); ok {
		if err := f.Flush(); err != nil {
			flushErr = fmt.Errorf("saving projects: %w", err)
		}
	}
	return errors.Join(runErr, flushErr)
}
