package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nttt/internal/registry"
	"nttt/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	gens  []uint64
	saved [][]registry.Entry
	err   error
}

func (f *fakeSaver) SaveSnapshot(gen uint64, entries []registry.Entry) error {
	f.gens = append(f.gens, gen)
	f.saved = append(f.saved, entries)
	return f.err
}

var (
	keyDown = tea.KeyMsg{Type: tea.KeyDown}
	keyUp   = tea.KeyMsg{Type: tea.KeyUp}
	keyEsc  = tea.KeyMsg{Type: tea.KeyEsc}
	keyD    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}
)

func newRegistry(entries ...registry.Entry) *registry.Registry {
	reg := registry.New()
	for _, e := range entries {
		reg.Set(e.Name, e.Port)
	}
	return reg
}

func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		next, ok := updated.(model)
		require.True(t, ok, "unexpected model type: %T", updated)
		m = next
	}
	return m, cmd
}

func TestNewModel_StartsOnFirstProject(t *testing.T) {
	m := NewModel(newRegistry(registry.Entry{Name: "b", Port: 2}, registry.Entry{Name: "a", Port: 1}), Options{})

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Name)
	assert.Equal(t, stateRunning, m.currentState)
	assert.NotNil(t, m.Init())
}

func TestModel_DownWrapsToFirst(t *testing.T) {
	m := NewModel(newRegistry(
		registry.Entry{Name: "a", Port: 1},
		registry.Entry{Name: "b", Port: 2},
		registry.Entry{Name: "c", Port: 3},
	), Options{})

	m, _ = press(t, m, keyDown, keyDown)
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, keyDown)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_UpWrapsToLast(t *testing.T) {
	m := NewModel(newRegistry(
		registry.Entry{Name: "a", Port: 1},
		registry.Entry{Name: "b", Port: 2},
	), Options{})

	m, _ = press(t, m, keyUp)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.Name)
}

func TestModel_EmptyRegistryKeysAreNoOps(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(registry.New(), Options{Saver: saver})

	for _, msg := range []tea.Msg{keyDown, keyUp, keyD, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}} {
		var cmd tea.Cmd
		m, cmd = press(t, m, msg)
		assert.Nil(t, cmd)
		assert.Equal(t, stateRunning, m.currentState)
		_, ok := m.Selected()
		assert.False(t, ok)
	}
	assert.Empty(t, saver.saved)
	assert.Contains(t, m.View(), "No hay proyectos registrados.")
}

func TestModel_DeleteRemovesHighlighted(t *testing.T) {
	reg := newRegistry(
		registry.Entry{Name: "svc1", Port: 9000},
		registry.Entry{Name: "svc2", Port: 9001},
	)
	m := NewModel(reg, Options{})

	m, cmd := press(t, m, keyDown, keyD)
	assert.Nil(t, cmd, "ephemeral sessions do not save")
	assert.Equal(t, []registry.Entry{{Name: "svc1", Port: 9000}}, reg.Entries())

	view := m.View()
	assert.Contains(t, view, "> svc1 - Puerto 9000")
	assert.NotContains(t, view, "svc2 - Puerto 9001")
	assert.Equal(t, []registry.Entry{{Name: "svc1", Port: 9000}}, m.entries)
}

func TestModel_DeleteLastRowClampsCursor(t *testing.T) {
	m := NewModel(newRegistry(
		registry.Entry{Name: "a", Port: 1},
		registry.Entry{Name: "b", Port: 2},
		registry.Entry{Name: "c", Port: 3},
	), Options{})

	m, _ = press(t, m, keyUp, keyD)
	assert.Equal(t, 1, m.cursor)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", sel.Name)

	m, _ = press(t, m, keyD, keyD)
	_, ok = m.Selected()
	assert.False(t, ok)
	assert.Empty(t, m.entries)

	m, cmd := press(t, m, keyD)
	assert.Nil(t, cmd)
	assert.Equal(t, stateRunning, m.currentState)
}

func TestModel_DeletePersistsThroughSaver(t *testing.T) {
	saver := &fakeSaver{}
	reg := newRegistry(registry.Entry{Name: "a", Port: 1}, registry.Entry{Name: "b", Port: 2})
	m := NewModel(reg, Options{Saver: saver})

	m, cmd := press(t, m, keyD)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, projectsSavedMsg{}, msg)
	assert.Equal(t, [][]registry.Entry{{{Name: "b", Port: 2}}}, saver.saved)
	assert.Equal(t, []uint64{1}, saver.gens)

	m, _ = press(t, m, msg)
	assert.NoError(t, m.lastError)
	assert.Contains(t, m.View(), "Eliminado: a")
}

func TestModel_SaveFailureKeepsRunning(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := NewModel(newRegistry(registry.Entry{Name: "a", Port: 1}), Options{Saver: saver})

	m, cmd := press(t, m, keyD)
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())

	assert.Equal(t, stateRunning, m.currentState)
	assert.Contains(t, m.View(), "Error al guardar: disk full")
}

func TestModel_EscapeTerminates(t *testing.T) {
	m := NewModel(newRegistry(registry.Entry{Name: "a", Port: 1}), Options{})

	m, cmd := press(t, m, keyDown, keyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, stateTerminated, m.currentState)
	assert.Empty(t, m.View())

	m, cmd = press(t, m, keyD)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.registry.Len(), "keys after termination are ignored")
}

func TestModel_CtrlCTerminates(t *testing.T) {
	m := NewModel(registry.New(), Options{})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, stateTerminated, m.currentState)
}

func TestModel_TickPicksUpRegistryChanges(t *testing.T) {
	reg := newRegistry(registry.Entry{Name: "a", Port: 1}, registry.Entry{Name: "b", Port: 2})
	m := NewModel(reg, Options{PollInterval: 10 * time.Millisecond})
	m, _ = press(t, m, keyDown)

	require.NoError(t, reg.Remove("b"))
	reg.Set("c", 3)

	m, cmd := press(t, m, tickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick reschedules itself")
	assert.Equal(t, []registry.Entry{{Name: "a", Port: 1}, {Name: "c", Port: 3}}, m.entries)
	assert.Contains(t, m.View(), "c - Puerto 3")

	require.NoError(t, reg.Remove("c"))
	require.NoError(t, reg.Remove("a"))
	m, _ = press(t, m, tickMsg(time.Now()))
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_ViewRendersPanel(t *testing.T) {
	m := NewModel(newRegistry(
		registry.Entry{Name: "alpha", Port: 8080},
		registry.Entry{Name: "beta", Port: 8081},
	), Options{})

	view := m.View()
	assert.Contains(t, view, "Proyectos")
	assert.Contains(t, view, "> alpha - Puerto 8080")
	assert.Contains(t, view, "  beta - Puerto 8081")
	assert.Equal(t, 1, strings.Count(view, "alpha - Puerto 8080"))
	assert.Contains(t, view, "esc: salir")
}

func TestModel_ScrollsToKeepCursorVisible(t *testing.T) {
	reg := registry.New()
	for i := 0; i < 20; i++ {
		reg.Set(fmt.Sprintf("p%02d", i), uint16(9000+i))
	}
	m := NewModel(reg, Options{})
	// 10 lines: 2 border + 1 title + 2 footer leaves 5 rows.
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})

	assert.Contains(t, m.View(), "p00 - Puerto 9000")
	assert.NotContains(t, m.View(), "p05 - Puerto 9005")

	m, _ = press(t, m, keyUp)
	assert.Equal(t, 19, m.cursor)
	assert.Equal(t, 15, m.offset)
	view := m.View()
	assert.Contains(t, view, "> p19 - Puerto 9019")
	assert.NotContains(t, view, "p14 - Puerto 9014")

	m, _ = press(t, m, keyDown)
	assert.Equal(t, 0, m.offset)
}

// Saves finishing out of order must leave the newest state on disk.
func TestModel_DeletesSavedOutOfOrderKeepNewest(t *testing.T) {
	file := store.NewFile(filepath.Join(t.TempDir(), "projects.yaml"))
	reg := newRegistry(
		registry.Entry{Name: "a", Port: 1},
		registry.Entry{Name: "b", Port: 2},
		registry.Entry{Name: "c", Port: 3},
	)
	m := NewModel(reg, Options{Saver: file})

	m, first := press(t, m, keyD)
	m, second := press(t, m, keyD)
	require.NotNil(t, first)
	require.NotNil(t, second)

	second()
	first()

	persisted, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, reg.Entries(), persisted)
	assert.Equal(t, []registry.Entry{{Name: "c", Port: 3}}, persisted)
}

func TestModel_SnapshotTakenAtDeleteTime(t *testing.T) {
	saver := &fakeSaver{}
	reg := newRegistry(registry.Entry{Name: "a", Port: 1}, registry.Entry{Name: "b", Port: 2})
	m := NewModel(reg, Options{Saver: saver})

	_, cmd := press(t, m, keyD)
	require.NotNil(t, cmd)
	reg.Set("z", 26)
	cmd()

	assert.Equal(t, [][]registry.Entry{{{Name: "b", Port: 2}}}, saver.saved)
}

func TestModel_FlushSavesFinalState(t *testing.T) {
	saver := &fakeSaver{}
	reg := newRegistry(registry.Entry{Name: "a", Port: 1}, registry.Entry{Name: "b", Port: 2})
	m := NewModel(reg, Options{Saver: saver})

	require.NoError(t, m.Flush())
	assert.Empty(t, saver.saved, "nothing deleted, nothing to flush")

	// Quit before the background save ever runs.
	m, _ = press(t, m, keyD, keyEsc)
	require.NoError(t, m.Flush())

	assert.Equal(t, []uint64{2}, saver.gens)
	assert.Equal(t, [][]registry.Entry{{{Name: "b", Port: 2}}}, saver.saved)
}

func TestModel_FlushEphemeralIsNoOp(t *testing.T) {
	m := NewModel(newRegistry(registry.Entry{Name: "a", Port: 1}), Options{})
	m, _ = press(t, m, keyD)
	assert.NoError(t, m.Flush())
}

func TestModel_ViewFitsSmallTerminal(t *testing.T) {
	reg := newRegistry(
		registry.Entry{Name: strings.Repeat("x", 40), Port: 8080},
		registry.Entry{Name: "y", Port: 1},
		registry.Entry{Name: "z", Port: 2},
		registry.Entry{Name: "zz", Port: 3},
	)
	m := NewModel(reg, Options{})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})

	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 8)
	assert.LessOrEqual(t, lipgloss.Width(view), 30)
	assert.Contains(t, view, "Proyectos")
	assert.Contains(t, view, "> xxxx")

	m, _ = press(t, m, keyUp)
	view = m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 8)
	assert.Contains(t, view, "> zz - Puerto 3")
}

func TestModel_ViewFitsWithLongFooter(t *testing.T) {
	saver := &fakeSaver{err: errors.New(strings.Repeat("no space left on device ", 5))}
	m := NewModel(newRegistry(registry.Entry{Name: "a", Port: 1}, registry.Entry{Name: "b", Port: 2}), Options{Saver: saver})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 7})

	m, cmd := press(t, m, keyD)
	m, _ = press(t, m, cmd())

	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 7)
	assert.LessOrEqual(t, lipgloss.Width(view), 40)
	assert.Contains(t, view, "> b - Puerto 2")
}
