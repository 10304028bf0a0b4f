package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/tsguide/pkg/profile"
)

// ProfileFetchedMsg delivers the simulated fetch result to the example with
// the matching ID.
type ProfileFetchedMsg struct {
	ID int
}

// ProfileModel displays one example component and applies its one-shot
// refresh when the scheduled ProfileFetchedMsg arrives.
type ProfileModel struct {
	id    int
	comp  profile.Component
	delay time.Duration
	theme Theme
	width int
}

// NewProfileModel wraps comp. The refresh fires delay after Init.
func NewProfileModel(id int, comp profile.Component, delay time.Duration, theme Theme) ProfileModel {
	return ProfileModel{
		id:    id,
		comp:  comp,
		delay: delay,
		theme: theme,
		width: exampleWidth,
	}
}

// Init schedules the refresh.
func (m ProfileModel) Init() tea.Cmd {
	return FetchProfileCmd(m.id, m.delay)
}

// FetchProfileCmd returns a command that sends ProfileFetchedMsg for id
// after delay.
func FetchProfileCmd(id int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return ProfileFetchedMsg{ID: id} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ProfileFetchedMsg{ID: id}
	})
}

// Update applies the refresh for messages addressed to this example.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	if fetched, ok := msg.(ProfileFetchedMsg); ok && fetched.ID == m.id {
		m.comp.Mount()
	}
	return m, nil
}

// Component returns the wrapped example.
func (m ProfileModel) Component() profile.Component { return m.comp }

// SetWidth sets the card width.
func (m *ProfileModel) SetWidth(w int) {
	m.width = w
}

// View renders the example card.
func (m ProfileModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.ExampleTitle.Render(m.comp.Title()))
	b.WriteString("\n")
	for _, line := range m.comp.Lines() {
		b.WriteString(truncate(line, m.width-4))
		b.WriteString("\n")
	}
	return m.theme.ExampleCard.Width(m.width - 2).Render(strings.TrimRight(b.String(), "\n"))
}
