package cli

import (
	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/config"
)

// SharedState holds read-only context shared across all views via pointer.
// Selection state lives in appModel, not here.
type SharedState struct {
	Catalog *catalog.Catalog
	Config  config.Config

	// Render turns stage text into styled terminal output no wider than
	// maxWidth; zero leaves the configured wrap width alone.
	Render func(text string, maxWidth int) string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the rows left for view content after the header
// (title, subtitle, separator) and the status bar (separator, hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// ModalWidth returns the widest a modal may render, leaving a one-column
// margin each side. Zero means the terminal size is not known yet.
func (s *SharedState) ModalWidth() int {
	if s.Width <= 0 {
		return 0
	}
	return max(s.Width-2, 20)
}
