// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- View Helpers ---

// innerWidth is the text width inside the panel border, or 0 when the window
// size is not known yet.
func (m *model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-2, 1)
}

// fit truncates s to width cells; width 0 means unlimited.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func (m *model) renderProjectListView() string {
	width := m.innerWidth()

	body := strings.Builder{}
	body.WriteString(titleStyle.Render(fit(panelTitle, width)))
	body.WriteString("\n")

	if len(m.entries) == 0 {
		body.WriteString(emptyStyle.Render(fit("No hay proyectos registrados.", width)))
	} else {
		start, end := 0, len(m.entries)
		if rows := m.visibleRows(); rows > 0 {
			start = m.offset
			end = min(start+rows, len(m.entries))
		}
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			line := m.entries[i].String()
			if m.hasSelection && i == m.cursor {
				lines = append(lines, selectedStyle.Render(fit(selectedMarker+line, width)))
			} else {
				lines = append(lines, fit(unselectedMarker+line, width))
			}
		}
		body.WriteString(strings.Join(lines, "\n"))
	}

	panel := mainContentBorderStyle
	if width > 0 {
		panel = panel.Width(width)
	}
	if rows := m.visibleRows(); rows > 0 {
		panel = panel.Height(rows + titleHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, panel.Render(body.String()), m.renderFooter())
}

// renderFooter returns a blank separator line and a single status/help line
// cut to the window width.
func (m *model) renderFooter() string {
	line := strings.Builder{}

	switch {
	case m.lastError != nil:
		line.WriteString(errorStyle.Render(fmt.Sprintf("Error al guardar: %v", m.lastError)))
		line.WriteString(footerSeparatorStyle.Render(" | "))
	case m.statusMessage != "":
		line.WriteString(statusStyle.Render(m.statusMessage))
		line.WriteString(footerSeparatorStyle.Render(" | "))
	}

	help := make([]string, 0, len(m.keymap.helpBindings()))
	for _, b := range m.keymap.helpBindings() {
		help = append(help, footerKeyStyle.Render(b.Help().Key)+": "+footerDescStyle.Render(b.Help().Desc))
	}
	line.WriteString(strings.Join(help, footerSeparatorStyle.Render(" | ")))

	return "\n" + fit(line.String(), m.width)
}
