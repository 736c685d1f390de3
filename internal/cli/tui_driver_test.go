package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/config"
	"github.com/alexanderramin/astroverse/internal/navigation"
	"github.com/alexanderramin/astroverse/internal/teatest"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// recordingObserver collects navigator transitions for assertions.
type recordingObserver struct {
	seen []navigation.Transition
}

func (r *recordingObserver) ObserveTransition(t navigation.Transition) {
	r.seen = append(r.seen, t)
}

// testApp returns an App wired to the built-in catalog with a style that
// never queries the terminal.
func testApp(t *testing.T) (*App, *recordingObserver) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Style = config.StyleNoTTY
	rec := &recordingObserver{}
	return &App{
		Catalog:  catalog.Default(),
		Config:   cfg,
		Observer: rec,
	}, rec
}

// TestDriver wraps teatest.Driver with portal-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel and drains Init. Without options the
// terminal is 120x40.
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()
	if len(opts) == 0 {
		opts = []teatest.Option{teatest.WithSize(120, 40)}
	}
	return &TestDriver{Driver: teatest.New(t, newAppModel(app), opts...)}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Selection returns the navigator's current snapshot.
func (d *TestDriver) Selection() navigation.Selection {
	return d.appModel().nav.Selection()
}

// ActiveViewID returns the ViewID of the topmost layer.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// IsQuitting reports whether the model or the driver saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// OpenCareer filters the catalog down to query and opens the first match.
func (d *TestDriver) OpenCareer(query string) {
	d.T.Helper()
	d.PressKey('/')
	d.Type(query)
	d.PressEnter()
	d.PressEnter()
}

// assertFits checks that the current frame fits a w x h terminal.
func (d *TestDriver) assertFits(w, h int, screen string) {
	d.T.Helper()
	lines := strings.Split(d.View(), "\n")
	assert.LessOrEqual(d.T, len(lines), h, "%s: frame height", screen)
	for i, line := range lines {
		assert.LessOrEqual(d.T, lipgloss.Width(line), w, "%s: line %d %q", screen, i, ansiPattern.ReplaceAllString(line, ""))
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// flatView strips styling and box borders and collapses whitespace, so text
// that glamour or lipgloss wrapped can be matched as one phrase.
func (d *TestDriver) flatView() string {
	s := ansiPattern.ReplaceAllString(d.View(), "")
	s = strings.NewReplacer("│", " ", "╭", " ", "╮", " ", "╰", " ", "╯", " ", "─", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
