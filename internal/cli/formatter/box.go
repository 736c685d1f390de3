package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(1, 2)

// RenderBox wraps content in a rounded-border box with an optional title.
// The box sizes itself to the content; a positive maxWidth caps its outer
// width and wraps the content to fit.
func RenderBox(title, content string, maxWidth int) string {
	if title != "" {
		content = StyleHeadline.Render(title) + "\n\n" + content
	}
	out := boxStyle.Render(content)
	if maxWidth > 0 && lipgloss.Width(out) > maxWidth {
		out = boxStyle.Width(maxWidth - boxStyle.GetHorizontalBorderSize()).Render(content)
	}
	return out
}

// BoxFrameWidth is the horizontal space RenderBox adds around its content.
func BoxFrameWidth() int {
	return boxStyle.GetHorizontalFrameSize()
}

// Overlay centers a modal in an area of the given size. With an unknown size
// it returns the modal unchanged.
func Overlay(modal string, width, height int) string {
	if width <= 0 || height <= 0 {
		return modal
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

// Rule renders a dim horizontal separator at least 20 cells wide.
func Rule(width int) string {
	return StyleDim.Render(strings.Repeat("─", max(width, 20)))
}
