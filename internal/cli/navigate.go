package cli

import (
	"github.com/alexanderramin/astroverse/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request selection changes.
// The appModel applies them to its Navigator in Update.

// selectCareerMsg opens the roadmap for a career.
type selectCareerMsg struct {
	id domain.CareerID
}

// selectStepMsg opens the detail for a stage of the open roadmap.
type selectStepMsg struct {
	stage domain.Stage
}

// closeStepDetailMsg dismisses the step detail, leaving the roadmap open.
type closeStepDetailMsg struct{}

// closeRoadmapMsg dismisses the roadmap and any step detail above it.
type closeRoadmapMsg struct{}

func selectCareer(id domain.CareerID) tea.Cmd {
	return func() tea.Msg { return selectCareerMsg{id: id} }
}

func selectStep(s domain.Stage) tea.Cmd {
	return func() tea.Msg { return selectStepMsg{stage: s} }
}

func closeStepDetail() tea.Cmd {
	return func() tea.Msg { return closeStepDetailMsg{} }
}

func closeRoadmap() tea.Cmd {
	return func() tea.Msg { return closeRoadmapMsg{} }
}
