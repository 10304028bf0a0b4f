package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/tsguide/pkg/lesson"
)

// Layout tokens (in cells).
const (
	defaultWidth   = 80
	defaultHeight  = 24
	minCodeLines   = 6
	tocWidth       = 26
	exampleWidth   = 36
	wideLayoutMin  = 120
	progressWidth  = 40
	viewOverheadLn = 20 // header, progress, card chrome, buttons, help, footer
)

// Difficulty badge colors. These are fixed and do not adapt to the
// terminal background.
var (
	ColorBeginner     = lipgloss.Color("#4CAF50")
	ColorIntermediate = lipgloss.Color("#FF9800")
	ColorAdvanced     = lipgloss.Color("#F44336")
	ColorBadgeText    = lipgloss.Color("#FFFFFF")

	// Gradient ends for the progress bar.
	ColorGradientStart = "#667EEA"
	ColorGradientEnd   = "#764BA2"
)

// DifficultyColor returns the badge background for d.
func DifficultyColor(d lesson.Difficulty) lipgloss.Color {
	switch d {
	case lesson.Beginner:
		return ColorBeginner
	case lesson.Intermediate:
		return ColorIntermediate
	default:
		return ColorAdvanced
	}
}

// RenderDifficultyBadge returns a styled difficulty pill.
func RenderDifficultyBadge(r *lipgloss.Renderer, d lesson.Difficulty) string {
	return r.NewStyle().
		Foreground(ColorBadgeText).
		Background(DifficultyColor(d)).
		Bold(true).
		Padding(0, 1).
		Render(d.String())
}
