package cli

import (
	"strings"

	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/alexanderramin/astroverse/internal/roadmap"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// roadmapView is the modal showing the six-stage timeline for one career.
type roadmapView struct {
	state    *SharedState
	career   domain.Career
	category domain.Category
	tailored bool // career has its own stage text
	stages   []domain.RoadmapStage
	selected domain.Stage // highlighted stage, zero when no detail is open
	cursor   domain.Stage
}

func newRoadmapView(state *SharedState, career domain.Career) *roadmapView {
	category, _ := state.Catalog.CategoryOf(career.ID)
	return &roadmapView{
		state:    state,
		career:   career,
		category: category,
		tailored: roadmap.HasOverride(career.ID),
		stages:   roadmap.Generate(career.ID),
		cursor:   domain.StageHighSchool,
	}
}

func (v *roadmapView) ID() ViewID    { return ViewRoadmap }
func (v *roadmapView) Title() string { return v.career.Title }

func (v *roadmapView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "move")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "step")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// setSelected mirrors the navigator's step. The cursor follows a selection
// but stays put when the selection is cleared.
func (v *roadmapView) setSelected(s domain.Stage) {
	v.selected = s
	if s.Valid() {
		v.cursor = s
	}
}

func (v *roadmapView) Init() tea.Cmd { return nil }

func (v *roadmapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch s := keyMsg.String(); s {
	case "left", "h":
		if v.cursor > domain.StageHighSchool {
			v.cursor--
		}
	case "right", "l":
		if v.cursor < domain.StageCareer {
			v.cursor++
		}
	case "enter", " ":
		return v, selectStep(v.cursor)
	case "x":
		return v, closeRoadmap()
	case "1", "2", "3", "4", "5", "6":
		v.cursor = domain.Stage(s[0] - '0')
		return v, selectStep(v.cursor)
	}
	return v, nil
}

func (v *roadmapView) View() string {
	maxWidth := v.state.ModalWidth()
	timelineWidth := 0
	if maxWidth > 0 {
		timelineWidth = maxWidth - formatter.BoxFrameWidth()
	}

	eyebrow := formatter.StyleCategory.Render(v.category.Title)
	if v.tailored {
		eyebrow += formatter.Dim(" · career-specific roadmap")
	}

	var b strings.Builder
	b.WriteString(eyebrow + "\n")
	b.WriteString(formatter.Dim(v.career.Description) + "\n\n")
	b.WriteString(formatter.Timeline(v.stages, v.selected, v.cursor, timelineWidth) + "\n\n")
	b.WriteString(formatter.StyleBlue.Render("Pick any step in the roadmap to see details"))
	return formatter.RenderBox(v.career.Title+" Roadmap", b.String(), maxWidth)
}
