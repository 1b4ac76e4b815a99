// Package styles provides shared lipgloss styles for CLI output and forms.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/shortid/pkg/randid"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorRed    = lipgloss.Color("#d75f6b")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
)

var safetyStyles = map[randid.Safety]lipgloss.Style{
	randid.SafetySafe:     lipgloss.NewStyle().Foreground(ColorGreen),
	randid.SafetyModerate: lipgloss.NewStyle().Foreground(ColorYellow),
	randid.SafetyHighRisk: lipgloss.NewStyle().Foreground(ColorRed).Bold(true),
}

// Safety renders a safety tier in its color.
func Safety(s randid.Safety) string {
	style, ok := safetyStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}

// FormTheme returns the huh theme used for interactive prompts.
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	return t
}
