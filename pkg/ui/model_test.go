package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/tsguide/pkg/config"
	"github.com/vanderheijden86/tsguide/pkg/watcher"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Examples.RefreshDelayMS = 0
	return NewModel(cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// Smoke test: the heading renders on first paint.
func TestRendersTutorialHeader(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "TypeScript Tutorial 2025") {
		t.Fatal("Expected heading in initial render")
	}
}

func TestEndToEndAdvance(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "Type Annotations") {
		t.Fatal("Expected lesson 1 initially")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Tutorial().CurrentLesson(); got.ID != 2 || !strings.Contains(m.View(), "Interfaces") {
		t.Fatalf("Expected lesson 2 Interfaces after one advance, got %d", got.ID)
	}

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := m.Tutorial().CurrentLesson(); got.ID != 1 {
		t.Fatalf("Expected lesson 1 after six advances, got %d", got.ID)
	}
}

func TestEndToEndExamplesRefreshAfterMount(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "User Name: Johnny") {
		t.Fatal("Expected initial example record before mount")
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Expected Init to schedule example refreshes")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("Expected tea.BatchMsg, got %T", cmd())
	}
	for _, c := range batch {
		m, _ = update(t, m, c())
	}

	view := m.View()
	if !strings.Contains(view, "User Name: kano") {
		t.Error("Expected function example to show refreshed name")
	}
	if !strings.Contains(view, "Name: sonya blade") {
		t.Error("Expected class example to show refreshed name")
	}

	// A repeated delivery is a no-op
	m, _ = update(t, m, ProfileFetchedMsg{ID: 1})
	if !strings.Contains(m.View(), "User Name: kano") {
		t.Error("Repeated refresh changed the record")
	}
}

func TestStartLessonFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.StartLesson = 3
	m := NewModel(cfg)
	if m.Tutorial().Index() != 2 {
		t.Errorf("Expected start index 2, got %d", m.Tutorial().Index())
	}
}

func TestToggleExamples(t *testing.T) {
	m := newTestModel(t)
	if !m.ShowExamples() {
		t.Fatal("Expected examples visible by default")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShowExamples() || strings.Contains(m.View(), "Testing User Component") {
		t.Error("Expected examples hidden after tab")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.ShowExamples() {
		t.Error("Expected examples visible after second tab")
	}
}

func TestWideLayoutPlacesExamplesBeside(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})

	if !m.wide() {
		t.Fatal("Expected wide layout at 160 columns")
	}
	if m.Tutorial().width != 160-exampleWidth-2 {
		t.Errorf("Expected tutorial width %d, got %d", 160-exampleWidth-2, m.Tutorial().width)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg, got %T", cmd())
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestClipboardStatus(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, ClipboardMsg{LessonID: 3})
	if msg, isErr := m.Status(); isErr || !strings.Contains(msg, "lesson 3") {
		t.Errorf("Unexpected status %q (error=%v)", msg, isErr)
	}
	if !strings.Contains(m.View(), "Copied lesson 3") {
		t.Error("Expected status line in view")
	}

	m, _ = update(t, m, ClipboardMsg{LessonID: 3, Err: os.ErrPermission})
	if _, isErr := m.Status(); !isErr {
		t.Error("Expected error status")
	}

	// Any key clears the status
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if msg, _ := m.Status(); msg != "" {
		t.Errorf("Expected cleared status, got %q", msg)
	}
}

func TestConfigReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.SaveTo(config.DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}
	w, err := watcher.New(path, watcher.WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t).WithWatcher(w)

	cfg := config.DefaultConfig()
	cfg.UI.ShowExamples = false
	cfg.UI.CodeWidth = 44
	if err := config.SaveTo(cfg, path); err != nil {
		t.Fatal(err)
	}

	m, cmd := update(t, m, ConfigChangedMsg{})
	if cmd == nil {
		t.Error("Expected watch to be re-armed")
	}
	if m.ShowExamples() {
		t.Error("Expected examples hidden after reload")
	}
	if m.Tutorial().code.Width() != 44 {
		t.Errorf("Expected code width 44, got %d", m.Tutorial().code.Width())
	}
	if msg, isErr := m.Status(); isErr || !strings.Contains(msg, "reloaded") {
		t.Errorf("Unexpected status %q", msg)
	}
}

func TestConfigReloadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  start_lesson: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := watcher.New(path)
	if err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t).WithWatcher(w)
	m, _ = update(t, m, ConfigChangedMsg{})
	if msg, isErr := m.Status(); !isErr || !strings.Contains(msg, "start_lesson") {
		t.Errorf("Expected validation error status, got %q", msg)
	}
	if !m.ShowExamples() {
		t.Error("Invalid config must not be applied")
	}
}
