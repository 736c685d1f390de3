package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/astroverse/internal/config"
	"github.com/alexanderramin/astroverse/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	return model.(appModel), cmd
}

func TestNewAppModelStartsOnCatalog(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)

	assert.Equal(t, ViewCatalog, m.activeView().ID())
	assert.Len(t, m.layers(), 1)
	assert.Nil(t, m.roadmap)
	assert.Nil(t, m.detail)
}

func TestAppModel_NavigationMessagesBuildLayers(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)

	m, cmd := update(t, m, selectCareerMsg{id: domain.CareerHeliophysicist})
	require.Nil(t, cmd)
	require.NotNil(t, m.roadmap)
	assert.Equal(t, []ViewID{ViewCatalog, ViewRoadmap}, layerIDs(m))

	m, _ = update(t, m, selectStepMsg{stage: domain.StageCareer})
	require.NotNil(t, m.detail)
	assert.Equal(t, []ViewID{ViewCatalog, ViewRoadmap, ViewStepDetail}, layerIDs(m))
	assert.Equal(t, domain.StageCareer, m.roadmap.selected)

	m, _ = update(t, m, closeStepDetailMsg{})
	assert.Equal(t, []ViewID{ViewCatalog, ViewRoadmap}, layerIDs(m))

	m, _ = update(t, m, closeRoadmapMsg{})
	assert.Equal(t, []ViewID{ViewCatalog}, layerIDs(m))
}

func TestAppModel_IgnoredMessagesKeepLayers(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)

	m, _ = update(t, m, selectStepMsg{stage: domain.StageGraduate})
	assert.Nil(t, m.detail)

	m, _ = update(t, m, selectCareerMsg{id: domain.CareerLaunchDirector})
	rv := m.roadmap
	m, _ = update(t, m, selectStepMsg{stage: 0})
	assert.Nil(t, m.detail)
	assert.Same(t, rv, m.roadmap, "roadmap view is reused while the career is unchanged")
}

func TestAppModel_EscReturnsNavigationCmd(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	m, _ = update(t, m, selectCareerMsg{id: domain.CareerCosmologist})
	m, _ = update(t, m, selectStepMsg{stage: domain.StageGraduate})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, closeStepDetailMsg{}, cmd())

	m, _ = update(t, m, closeStepDetailMsg{})
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, closeRoadmapMsg{}, cmd())
}

func TestAppModel_WindowResize(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 25, m.state.ContentHeight())
	assert.Equal(t, 25, m.catalog.vp.Height)

	view := m.View()
	assert.Equal(t, 30, strings.Count(view, "\n")+1, "view is padded to terminal height")
}

func TestAppModel_HeaderBreadcrumb(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app)
	m, _ = update(t, m, selectCareerMsg{id: domain.CareerFlightDirector})
	m, _ = update(t, m, selectStepMsg{stage: domain.StageDoctorate})

	header := ansiPattern.ReplaceAllString(m.renderHeader(), "")
	assert.Contains(t, header, "AstroVerse Explorer › Careers › Flight Director › Doctorate (PhD)")
}

func TestSharedState_ContentHeightFloor(t *testing.T) {
	s := &SharedState{Height: 3}
	assert.Equal(t, 1, s.ContentHeight())
}

func TestSharedState_ModalWidth(t *testing.T) {
	assert.Zero(t, (&SharedState{}).ModalWidth(), "unknown before the first resize")
	assert.Equal(t, 78, (&SharedState{Width: 80}).ModalWidth())
	assert.Equal(t, 20, (&SharedState{Width: 10}).ModalWidth())
}

func TestStageRenderer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Style = config.StyleNoTTY
	cfg.WrapWidth = 40

	render := newStageRenderer(cfg)
	text := "Publish papers and present at conferences to establish your expertise."

	out := render(text, 0)
	assert.NotContains(t, out, "\n\n")
	assert.Contains(t, strings.Join(strings.Fields(out), " "), "Publish papers and present at conferences")
	assert.Greater(t, strings.Count(out, "\n"), 0, "text wraps at the configured width")
	assert.LessOrEqual(t, lipgloss.Width(out), 40)

	narrow := render(text, 30)
	assert.LessOrEqual(t, lipgloss.Width(narrow), 30)
	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(out, "\n"))

	// A wider terminal never widens past the configured wrap.
	assert.Equal(t, out, render(text, 200))

	assert.Equal(t, "plain", plainRender("  plain \n"))
}

func layerIDs(m appModel) []ViewID {
	var ids []ViewID
	for _, v := range m.layers() {
		ids = append(ids, v.ID())
	}
	return ids
}
