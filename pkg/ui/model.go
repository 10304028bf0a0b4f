package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tsguide/pkg/config"
	"github.com/vanderheijden86/tsguide/pkg/debug"
	"github.com/vanderheijden86/tsguide/pkg/profile"
	"github.com/vanderheijden86/tsguide/pkg/watcher"
)

// ConfigChangedMsg is sent when the watched config file changes.
type ConfigChangedMsg struct{}

// WatchConfigCmd waits for the next config change.
func WatchConfigCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return ConfigChangedMsg{}
	}
}

// Model is the root program model: the tutorial plus the example pane.
type Model struct {
	tutorial     TutorialModel
	examples     []ProfileModel
	showExamples bool

	theme  Theme
	keys   keyMap
	width  int
	height int

	cfg     config.Config
	watcher *watcher.Watcher

	statusMsg     string
	statusIsError bool
	quitting      bool
}

// NewModel builds the root model from cfg.
func NewModel(cfg config.Config) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())

	tutorial := NewTutorialModel(theme)
	tutorial.JumpTo(cfg.UI.StartLesson - 1)
	tutorial.SetCodeWidth(cfg.UI.CodeWidth)

	delay := cfg.RefreshDelay()
	examples := []ProfileModel{
		NewProfileModel(1, profile.NewFunctional(cfg.Examples.Area), delay, theme),
		NewProfileModel(2, profile.NewClassic(cfg.Examples.Area), delay, theme),
	}

	m := Model{
		tutorial:     tutorial,
		examples:     examples,
		showExamples: cfg.UI.ShowExamples,
		theme:        theme,
		keys:         defaultKeyMap(),
		cfg:          cfg,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// WithWatcher enables live config reload from w.
func (m Model) WithWatcher(w *watcher.Watcher) Model {
	m.watcher = w
	return m
}

// Stop releases the config watcher.
func (m Model) Stop() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.examples)+1)
	for _, ex := range m.examples {
		cmds = append(cmds, ex.Init())
	}
	if m.watcher != nil {
		cmds = append(cmds, WatchConfigCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ProfileFetchedMsg:
		for i := range m.examples {
			m.examples[i], _ = m.examples[i].Update(msg)
		}
		return m, nil

	case ClipboardMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("❌ Clipboard error: %v", msg.Err)
			m.statusIsError = true
		} else {
			m.statusMsg = fmt.Sprintf("📋 Copied lesson %d code to clipboard", msg.LessonID)
			m.statusIsError = false
		}
		return m, nil

	case ConfigChangedMsg:
		m.reloadConfig()
		if m.watcher != nil {
			return m, WatchConfigCmd(m.watcher)
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.statusIsError = false

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Examples):
			m.showExamples = !m.showExamples
			m.resize(m.width, m.height)
			return m, nil
		}

		var cmd tea.Cmd
		m.tutorial, cmd = m.tutorial.Update(msg)
		return m, cmd
	}
	return m, nil
}

// reloadConfig re-reads the watched file and applies the settings that can
// change at runtime.
func (m *Model) reloadConfig() {
	cfg, err := config.LoadFrom(m.watcher.Path())
	if err == nil {
		err = cfg.Validate(m.tutorial.pager.Len())
	}
	if err != nil {
		debug.Log("config reload failed: %v", err)
		m.statusMsg = fmt.Sprintf("❌ Config reload failed: %v", err)
		m.statusIsError = true
		return
	}

	m.cfg = cfg
	m.showExamples = cfg.UI.ShowExamples
	m.tutorial.SetCodeWidth(cfg.UI.CodeWidth)
	m.resize(m.width, m.height)
	m.statusMsg = "🔄 Config reloaded"
	m.statusIsError = false
	debug.Dump("config reloaded", cfg)
}

// wide reports whether the examples fit beside the tutorial.
func (m Model) wide() bool {
	return m.width >= wideLayoutMin
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	tw := width
	if m.showExamples && m.wide() {
		tw = width - exampleWidth - 2
	}
	m.tutorial.SetSize(tw, height)
	for i := range m.examples {
		m.examples[i].SetWidth(exampleWidth)
	}
}

// Tutorial returns the tutorial sub-model.
func (m Model) Tutorial() TutorialModel { return m.tutorial }

// Examples returns the example sub-models.
func (m Model) Examples() []ProfileModel { return m.examples }

// ShowExamples reports whether the example pane is visible.
func (m Model) ShowExamples() bool { return m.showExamples }

// Status returns the transient status line and whether it is an error.
func (m Model) Status() (string, bool) { return m.statusMsg, m.statusIsError }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.tutorial.View()
	if m.showExamples {
		cards := make([]string, 0, len(m.examples))
		for _, ex := range m.examples {
			cards = append(cards, ex.View())
		}
		if m.wide() {
			pane := lipgloss.JoinVertical(lipgloss.Left, cards...)
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", pane)
		} else {
			pane := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
			body = lipgloss.JoinVertical(lipgloss.Left, body, "", pane)
		}
	}

	if m.statusMsg != "" {
		style := m.theme.MutedText
		if m.statusIsError {
			style = m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)
		}
		body += "\n" + style.Render(m.statusMsg)
	}
	return body
}
