package cli

import (
	"strings"

	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/alexanderramin/astroverse/internal/navigation"
	"github.com/alexanderramin/astroverse/internal/roadmap"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the portal. It owns the
// Navigator and derives the roadmap and step-detail layers from it after
// every navigation message.
type appModel struct {
	state    *SharedState
	nav      *navigation.Navigator
	quitting bool

	catalog *catalogView
	roadmap *roadmapView    // nil while Idle
	detail  *stepDetailView // nil unless a step is selected
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		Catalog: app.catalog(),
		Config:  app.Config,
		Render:  newStageRenderer(app.Config),
	}
	return appModel{
		state:   state,
		nav:     navigation.New(state.Catalog, app.Observer),
		catalog: newCatalogView(state),
	}
}

// activeView returns the topmost visible layer.
func (m *appModel) activeView() View {
	switch {
	case m.detail != nil:
		return m.detail
	case m.roadmap != nil:
		return m.roadmap
	default:
		return m.catalog
	}
}

// layers returns the visible views, bottom to top.
func (m *appModel) layers() []View {
	views := []View{m.catalog}
	if m.roadmap != nil {
		views = append(views, m.roadmap)
	}
	if m.detail != nil {
		views = append(views, m.detail)
	}
	return views
}

// sync rebuilds the modal layers from the navigator's selection.
func (m *appModel) sync() {
	sel := m.nav.Selection()
	if !sel.HasCareer() {
		m.roadmap = nil
		m.detail = nil
		return
	}

	if m.roadmap == nil || m.roadmap.career.ID != sel.Career.ID {
		m.roadmap = newRoadmapView(m.state, sel.Career)
	}
	m.roadmap.setSelected(sel.Step)

	if !sel.HasStep() {
		m.detail = nil
		return
	}
	if m.detail == nil || m.detail.career.ID != sel.Career.ID || m.detail.stage.Ordinal != sel.Step {
		stage, ok := roadmap.StageFor(sel.Career.ID, sel.Step)
		if !ok {
			m.detail = nil
			return
		}
		m.detail = newStepDetailView(m.state, sel.Career, stage)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.catalog.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		var cmds []tea.Cmd
		for _, v := range m.layers() {
			_, cmd := v.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case selectCareerMsg:
		if m.nav.SelectCareer(msg.id) {
			m.sync()
		}
		return m, nil

	case selectStepMsg:
		if m.nav.SelectStep(msg.stage) {
			m.sync()
		}
		return m, nil

	case closeStepDetailMsg:
		if m.nav.CloseStepDetail() {
			m.sync()
		}
		return m, nil

	case closeRoadmapMsg:
		if m.nav.CloseRoadmap() {
			m.sync()
		}
		return m, nil
	}

	_, cmd := m.activeView().Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A view with its own text input gets every key, including q and esc.
	if v := m.activeView(); viewCapturesInput(v) {
		_, cmd := v.Update(msg)
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc && m.detail != nil:
		return m, closeStepDetail()

	case msg.Type == tea.KeyEsc && m.roadmap != nil:
		return m, closeRoadmap()
	}

	_, cmd := m.activeView().Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch v := m.activeView(); v.ID() {
	case ViewCatalog:
		sections = append(sections, v.View())
	default:
		sections = append(sections, formatter.Overlay(v.View(), m.state.Width, m.state.ContentHeight()))
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeadline.Render("AstroVerse Explorer")

	var crumbs []string
	for _, v := range m.layers() {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	subtitle := formatter.StyleBlue.Render("Space Career Pathways")
	return m.clip(title) + "\n" + subtitle + "\n" + formatter.Rule(m.state.Width)
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	return formatter.Rule(m.state.Width) + "\n" + m.clip(strings.Join(hints, "  "))
}

// clip truncates a single line to the terminal width.
func (m *appModel) clip(line string) string {
	if m.state.Width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(m.state.Width).Render(line)
}

// inputCapturer is implemented by views that own a text input while active.
type inputCapturer interface {
	capturesInput() bool
}

// viewCapturesInput returns true if v should receive all key events,
// bypassing global keybindings like q and esc.
func viewCapturesInput(v View) bool {
	c, ok := v.(inputCapturer)
	return ok && c.capturesInput()
}
