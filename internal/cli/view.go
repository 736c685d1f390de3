package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewCatalog ViewID = iota
	ViewRoadmap
	ViewStepDetail
)

// View is implemented by every layer of the portal. Views render from the
// selection they were built with and request changes by returning
// navigation messages; they never mutate the selection themselves.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}
