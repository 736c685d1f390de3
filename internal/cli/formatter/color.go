package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Deep-space palette: indigo and blue surfaces with purple accents.
var (
	ColorBlue     = lipgloss.Color("#bfdbfe")
	ColorSky      = lipgloss.Color("#dbeafe")
	ColorPurple   = lipgloss.Color("#d8b4fe")
	ColorViolet   = lipgloss.Color("#9333ea")
	ColorIndigo   = lipgloss.Color("#312e81")
	ColorBorder   = lipgloss.Color("#6366f1")
	ColorDim      = lipgloss.Color("#7c86b8")
	ColorFg       = lipgloss.Color("#eef2ff")
	ColorHeadline = lipgloss.Color("#ffffff")
)

var (
	StyleBlue     = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleSky      = lipgloss.NewStyle().Foreground(ColorSky)
	StylePurple   = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeadline = lipgloss.NewStyle().Foreground(ColorHeadline).Bold(true)
	StyleCategory = lipgloss.NewStyle().Foreground(ColorPurple).Bold(true)

	// StyleStep is an unselected roadmap node; StyleStepActive the selected one.
	StyleStep       = lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorIndigo).Padding(0, 1)
	StyleStepActive = lipgloss.NewStyle().Foreground(ColorHeadline).Background(ColorViolet).Bold(true).Padding(0, 1)
)

// Header renders a category heading underlined to its own width.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleCategory.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
