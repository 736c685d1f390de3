package cli

import (
	"strings"

	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const learnMore = "Want to learn more? Explore our learning modules or join the AstroVerse community!"

// stepDetailView is the modal showing one stage's text in a scrollable
// viewport.
type stepDetailView struct {
	state  *SharedState
	career domain.Career
	stage  domain.RoadmapStage
	body   string
	vp     viewport.Model
}

func newStepDetailView(state *SharedState, career domain.Career, stage domain.RoadmapStage) *stepDetailView {
	v := &stepDetailView{
		state:  state,
		career: career,
		stage:  stage,
		vp:     viewport.New(0, 0),
	}
	v.vp.KeyMap = detailViewportKeyMap()
	v.resize()
	return v
}

func (v *stepDetailView) ID() ViewID    { return ViewStepDetail }
func (v *stepDetailView) Title() string { return v.stage.Title }

func (v *stepDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "prev/next step")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to roadmap")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close roadmap")),
	}
}

// textWidth is the room inside the modal box, or zero before the terminal
// size is known.
func (v *stepDetailView) textWidth() int {
	if w := v.state.ModalWidth(); w > 0 {
		return w - formatter.BoxFrameWidth()
	}
	return 0
}

// resize re-renders the text for the current terminal and fits the
// viewport to it.
func (v *stepDetailView) resize() {
	width := v.textWidth()
	v.body = v.state.Render(v.stage.Content, width)
	v.vp.SetContent(v.body)

	v.vp.Width = max(lipgloss.Width(v.body), 20)
	footerLines := 1
	if width > 0 {
		v.vp.Width = min(v.vp.Width, width)
		footerLines = lipgloss.Height(lipgloss.NewStyle().Width(width).Render(learnMore))
	}

	lines := strings.Count(v.body, "\n") + 1
	// Box border and padding take four rows; badge, career line and two
	// blank lines four more.
	avail := v.state.ContentHeight() - 8 - footerLines
	if v.state.Height <= 0 {
		avail = lines
	}
	v.vp.Height = max(min(lines, avail), 3)
}

func (v *stepDetailView) Init() tea.Cmd { return nil }

func (v *stepDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if v.stage.Ordinal > domain.StageHighSchool {
				return v, selectStep(v.stage.Ordinal - 1)
			}
			return v, nil
		case "right", "l":
			if v.stage.Ordinal < domain.StageCareer {
				return v, selectStep(v.stage.Ordinal + 1)
			}
			return v, nil
		case "x":
			return v, closeRoadmap()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *stepDetailView) View() string {
	var b strings.Builder
	b.WriteString(formatter.StageBadge(v.stage) + "\n")
	b.WriteString(formatter.Dim(v.career.Title) + "\n\n")
	b.WriteString(v.vp.View() + "\n\n")
	b.WriteString(formatter.StyleDim.Render(learnMore))
	return formatter.RenderBox("", b.String(), v.state.ModalWidth())
}

// detailViewportKeyMap limits scrolling to arrow and page keys so letters
// stay free for step navigation.
func detailViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
