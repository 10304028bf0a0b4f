package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tsguide/pkg/lesson"
	"github.com/vanderheijden86/tsguide/pkg/pager"
)

const (
	tutorialTitle    = "🚀 TypeScript Tutorial 2025"
	tutorialSubtitle = "Learn TypeScript fundamentals with React"
	tutorialFooter   = "Built with React + TypeScript ❤️"
)

// ClipboardMsg reports the result of copying a code sample.
type ClipboardMsg struct {
	LessonID int
	Err      error
}

// TutorialModel renders the lesson carousel and routes navigation keys to
// the pager.
type TutorialModel struct {
	pager      pager.Pager
	codeScroll int
	tocVisible bool
	width      int
	height     int
	codeWidth  int // 0 = fit the card

	theme    Theme
	keys     keyMap
	help     help.Model
	progress progress.Model
	code     *CodeRenderer

	copyFn func(string) error
}

// NewTutorialModel creates a tutorial over the built-in lessons.
func NewTutorialModel(theme Theme) TutorialModel {
	p := progress.New(
		progress.WithGradient(ColorGradientStart, ColorGradientEnd),
		progress.WithWidth(progressWidth),
		progress.WithoutPercentage(),
	)

	m := TutorialModel{
		pager:    *pager.Default(),
		width:    defaultWidth,
		height:   defaultHeight,
		theme:    theme,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: p,
		copyFn:   clipboard.WriteAll,
	}
	m.code = NewCodeRenderer(m.codeWrapWidth())
	return m
}

// Init initializes the tutorial model.
func (m TutorialModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m TutorialModel) Update(msg tea.Msg) (TutorialModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.Next()
	case key.Matches(keyMsg, m.keys.Prev):
		m.Prev()
	case key.Matches(keyMsg, m.keys.Jump):
		n := int(keyMsg.String()[0] - '1')
		if n < m.pager.Len() {
			m.JumpTo(n)
		}
	case key.Matches(keyMsg, m.keys.ScrollDown):
		if m.codeScroll < m.maxCodeScroll() {
			m.codeScroll++
		}
	case key.Matches(keyMsg, m.keys.ScrollUp):
		if m.codeScroll > 0 {
			m.codeScroll--
		}
	case key.Matches(keyMsg, m.keys.Copy):
		return m, m.copyCode()
	case key.Matches(keyMsg, m.keys.TOC):
		m.tocVisible = !m.tocVisible
		m.code.SetWidth(m.codeWrapWidth())
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// Next advances to the next lesson, wrapping at the end.
func (m *TutorialModel) Next() {
	m.pager.Advance()
	m.codeScroll = 0
}

// Prev goes to the previous lesson, wrapping at the start.
func (m *TutorialModel) Prev() {
	m.pager.Retreat()
	m.codeScroll = 0
}

// JumpTo jumps to lesson index i.
func (m *TutorialModel) JumpTo(i int) {
	m.pager.JumpTo(i)
	m.codeScroll = 0
}

// Index returns the current lesson index.
func (m TutorialModel) Index() int { return m.pager.Index() }

// CurrentLesson returns the lesson on screen.
func (m TutorialModel) CurrentLesson() lesson.Lesson { return m.pager.Current() }

// Difficulty returns the badge of the lesson on screen.
func (m TutorialModel) Difficulty() lesson.Difficulty { return m.pager.Difficulty() }

// SetSize sets the tutorial dimensions and rewraps code samples.
func (m *TutorialModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.code.SetWidth(m.codeWrapWidth())
}

// SetCodeWidth overrides the code wrap width; 0 fits the card.
func (m *TutorialModel) SetCodeWidth(w int) {
	m.codeWidth = w
	m.code.SetWidth(m.codeWrapWidth())
}

func (m TutorialModel) copyCode() tea.Cmd {
	l := m.pager.Current()
	copyFn := m.copyFn
	return func() tea.Msg {
		return ClipboardMsg{LessonID: l.ID, Err: copyFn(l.Code)}
	}
}

// contentWidth is the width available to the lesson card.
func (m TutorialModel) contentWidth() int {
	w := m.width - 2
	if m.tocVisible {
		w -= tocWidth + 2
	}
	if w < 40 {
		w = 40
	}
	return w
}

// cardInnerWidth subtracts the card border and padding.
func (m TutorialModel) cardInnerWidth() int {
	return m.contentWidth() - 6
}

func (m TutorialModel) codeWrapWidth() int {
	if m.codeWidth > 0 {
		return m.codeWidth
	}
	return m.cardInnerWidth() - 4
}

func (m TutorialModel) visibleCodeLines() int {
	h := m.height - viewOverheadLn
	if h < minCodeLines {
		h = minCodeLines
	}
	return h
}

func (m TutorialModel) maxCodeScroll() int {
	n := len(m.code.Lines(m.pager.Current())) - m.visibleCodeLines()
	if n < 0 {
		return 0
	}
	return n
}

// View renders the whole tutorial page.
func (m TutorialModel) View() string {
	width := m.contentWidth()
	if m.tocVisible {
		width += tocWidth + 2
	}
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var b strings.Builder
	b.WriteString(center(m.theme.Title.Render(tutorialTitle)))
	b.WriteString("\n")
	b.WriteString(center(m.theme.Subtitle.Render(tutorialSubtitle)))
	b.WriteString("\n\n")

	b.WriteString(m.renderProgress(center))
	b.WriteString("\n\n")

	card := m.renderCard()
	if m.tocVisible {
		card = lipgloss.JoinHorizontal(lipgloss.Top, m.renderTOC(), "  ", card)
	}
	b.WriteString(card)
	b.WriteString("\n\n")

	b.WriteString(center(m.renderButtons()))
	b.WriteString("\n\n")
	b.WriteString(center(m.help.View(m.keys)))
	b.WriteString("\n\n")
	b.WriteString(center(m.theme.Footer.Render(tutorialFooter)))

	return b.String()
}

// renderProgress renders the bar and "Section i of n" line.
func (m TutorialModel) renderProgress(center func(string) string) string {
	bar := m.progress
	bar.Width = min(progressWidth, m.contentWidth())
	text := fmt.Sprintf("Section %d of %d", m.pager.Index()+1, m.pager.Len())
	return center(bar.ViewAs(m.pager.ProgressFraction())) + "\n" +
		center(m.theme.ProgressText.Render(text))
}

// renderCard renders the lesson title, badge, description and code.
func (m TutorialModel) renderCard() string {
	r := m.theme.Renderer
	l := m.pager.Current()
	inner := m.cardInnerWidth()

	badge := RenderDifficultyBadge(r, m.pager.Difficulty())
	titleMax := inner - lipgloss.Width(badge) - 2
	title := m.theme.CardTitle.Render(truncate(l.Title, titleMax))
	gap := inner - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + badge

	desc := m.theme.Description.Width(inner).Render(l.Description)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		desc,
		"",
		m.renderCode(inner),
	)
	return m.theme.Card.Width(m.contentWidth() - 2).Render(body)
}

// renderCode renders the scrollable code block with overflow hints.
func (m TutorialModel) renderCode(width int) string {
	lines := m.code.Lines(m.pager.Current())
	visible, offset := window(lines, m.codeScroll, m.visibleCodeLines())
	content := strings.Join(visible, "\n")

	if offset > 0 {
		content = m.theme.MutedText.Render("↑ more above") + "\n" + content
	}
	if offset+len(visible) < len(lines) {
		content = content + "\n" + m.theme.MutedText.Render("↓ more below")
	}
	return m.theme.CodeBlock.Width(width - 2).Render(content)
}

func (m TutorialModel) renderButtons() string {
	prev := m.theme.Button.Render("← Previous")
	next := m.theme.PrimaryButton.Render("Next →")
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", next)
}

// renderTOC renders the lesson list sidebar.
func (m TutorialModel) renderTOC() string {
	r := m.theme.Renderer

	style := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(tocWidth - 2)

	itemStyle := r.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Contents"))
	b.WriteString("\n\n")

	for i, l := range m.pager.Lessons() {
		prefix := "   "
		st := itemStyle
		if i == m.pager.Index() {
			prefix = " ▶ "
			st = selectedStyle
		}
		line := fmt.Sprintf("%s%d. %s", prefix, l.ID, l.Title)
		b.WriteString(st.Render(truncate(line, tocWidth-4)))
		b.WriteString("\n")
	}

	return style.Render(strings.TrimRight(b.String(), "\n"))
}
