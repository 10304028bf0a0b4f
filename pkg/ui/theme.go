package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so low-color terminals keep their own
// background instead of a down-converted navy.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Code      lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	// Styles
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	ProgressText  lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	Description   lipgloss.Style
	CodeBlock     lipgloss.Style
	Button        lipgloss.Style
	PrimaryButton lipgloss.Style
	Footer        lipgloss.Style
	MutedText     lipgloss.Style
	ExampleCard   lipgloss.Style
	ExampleTitle  lipgloss.Style
}

// DefaultTheme returns the indigo-on-navy tutorial theme (adaptive).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#4C5FD5", Dark: "#667EEA"}, // Indigo (darker in light mode for contrast)
		Accent:    lipgloss.AdaptiveColor{Light: "#5E3A87", Dark: "#764BA2"}, // Violet
		Text:      lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#555555", Dark: "#B0B0B0"},
		Muted:     lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"},
		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#333333"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#16213E"},
		Code:      lipgloss.AdaptiveColor{Light: "#007744", Dark: "#00FF88"},
		Success:   lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#4CAF50"},
		Danger:    lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#F44336"},
	}

	t.Title = r.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	t.Subtitle = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A0A0A0"})
	t.ProgressText = r.NewStyle().Foreground(t.Muted)

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(ThemeBg("#16213E")).
		Padding(1, 2)

	t.CardTitle = r.NewStyle().Bold(true).Foreground(t.Text)
	t.Description = r.NewStyle().Foreground(t.Subtext)

	t.CodeBlock = r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Foreground(t.Code).
		Background(ThemeBg("#0F0F23")).
		Padding(0, 1)

	t.Button = r.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}).
		Background(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#333333"}).
		Padding(0, 3)

	t.PrimaryButton = t.Button.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Primary).
		Bold(true)

	t.Footer = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#666666"})
	t.MutedText = r.NewStyle().Foreground(t.Muted)

	t.ExampleCard = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.ExampleTitle = r.NewStyle().Bold(true).Foreground(t.Accent)

	return t
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
