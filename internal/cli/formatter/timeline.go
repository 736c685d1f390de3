package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Caption widths for the horizontal timeline. Below the minimum a caption
// word would be split, so the nodes are stacked instead.
const (
	timelineLabelWidth    = 14
	timelineMinLabelWidth = 13
	timelineConnector     = "──"
)

// Timeline renders the roadmap as a row of numbered nodes joined by a line,
// with stage titles beneath. When the row would exceed a positive maxWidth,
// the nodes are listed one per line. selected highlights one node and cursor
// marks keyboard focus; either may be zero.
func Timeline(stages []domain.RoadmapStage, selected, cursor domain.Stage, maxWidth int) string {
	if len(stages) == 0 {
		return ""
	}

	label := timelineLabelWidth
	if maxWidth > 0 {
		gaps := (len(stages) - 1) * lipgloss.Width(timelineConnector)
		label = min(label, (maxWidth-gaps)/len(stages))
	}
	if label < timelineMinLabelWidth {
		return verticalTimeline(stages, selected, cursor)
	}

	column := lipgloss.NewStyle().Width(label).Align(lipgloss.Center)
	caption := column.Foreground(ColorBlue)

	cols := make([]string, 0, len(stages)*2)
	for i, s := range stages {
		marker := " "
		if s.Ordinal == cursor {
			marker = StylePurple.Render("▴")
		}

		cols = append(cols, column.Render(lipgloss.JoinVertical(lipgloss.Center,
			stageNode(s, selected),
			marker,
			caption.Render(s.Title),
		)))
		if i < len(stages)-1 {
			cols = append(cols, StylePurple.Render(timelineConnector))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func verticalTimeline(stages []domain.RoadmapStage, selected, cursor domain.Stage) string {
	lines := make([]string, 0, len(stages))
	for _, s := range stages {
		marker := "  "
		if s.Ordinal == cursor {
			marker = StylePurple.Render("▸ ")
		}
		lines = append(lines, marker+stageNode(s, selected)+" "+StyleBlue.Render(s.Title))
	}
	return strings.Join(lines, "\n")
}

func stageNode(s domain.RoadmapStage, selected domain.Stage) string {
	num := fmt.Sprintf("%d", int(s.Ordinal))
	if s.Ordinal == selected {
		return StyleStepActive.Render(num)
	}
	return StyleStep.Render(num)
}

// StageBadge renders the ordinal badge and title shown atop a step detail.
func StageBadge(s domain.RoadmapStage) string {
	return StyleStepActive.Render(fmt.Sprintf("%d", int(s.Ordinal))) + " " + StyleHeadline.Render(s.Title)
}

// StageList renders a roadmap as numbered paragraphs for non-interactive
// output.
func StageList(stages []domain.RoadmapStage) string {
	var b strings.Builder
	for i, s := range stages {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", StylePurple.Render(fmt.Sprintf("%d.", int(s.Ordinal))), Bold(s.Title))
		b.WriteString("   " + StyleSky.Render(s.Content) + "\n")
	}
	return b.String()
}
