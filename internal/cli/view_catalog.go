package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// catalogIndent is the left indent of a career description.
const catalogIndent = 6

// catalogView lists careers grouped by category with a movable cursor.
type catalogView struct {
	state      *SharedState
	categories []domain.Category
	careers    []domain.Career // flattened visible careers, cursor indexes this
	cursor     int
	vp         viewport.Model

	// Filtering
	filtering bool
	filter    string
}

func newCatalogView(state *SharedState) *catalogView {
	v := &catalogView{state: state, vp: viewport.New(0, 0)}
	v.applyFilter()
	return v
}

func (v *catalogView) ID() ViewID    { return ViewCatalog }
func (v *catalogView) Title() string { return "Careers" }

func (v *catalogView) ShortHelp() []key.Binding {
	if v.filtering {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "roadmap")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *catalogView) capturesInput() bool { return v.filtering }

func (v *catalogView) Init() tea.Cmd { return nil }

func (v *catalogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *catalogView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.careers)-1 {
			v.cursor++
		}
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = max(len(v.careers)-1, 0)
	case "enter":
		if c, ok := v.selected(); ok {
			return v, selectCareer(c.ID)
		}
	case "/":
		v.filtering = true
		v.filter = ""
	case "esc":
		if v.filter != "" {
			v.filter = ""
			v.applyFilter()
		}
	}
	return v, nil
}

func (v *catalogView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.applyFilter()
	case tea.KeyEnter:
		v.filtering = false
	case tea.KeyBackspace:
		if v.filter != "" {
			_, size := utf8.DecodeLastRuneInString(v.filter)
			v.filter = v.filter[:len(v.filter)-size]
			v.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		v.filter += msg.String()
		v.applyFilter()
	}
	return v, nil
}

func (v *catalogView) applyFilter() {
	v.categories = v.state.Catalog.Filter(v.filter)
	v.careers = v.careers[:0]
	for _, cat := range v.categories {
		v.careers = append(v.careers, cat.Careers...)
	}
	v.cursor = 0
}

// selected returns the career under the cursor.
func (v *catalogView) selected() (domain.Career, bool) {
	if v.cursor < 0 || v.cursor >= len(v.careers) {
		return domain.Career{}, false
	}
	return v.careers[v.cursor], true
}

func (v *catalogView) View() string {
	lines, first, last := v.lines()
	if v.vp.Height <= 0 {
		return strings.Join(lines, "\n")
	}

	v.vp.SetContent(strings.Join(lines, "\n"))
	// Keep the whole entry (title and description) under the cursor visible.
	switch {
	case first < v.vp.YOffset:
		v.vp.SetYOffset(first)
	case last >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(last + 1 - v.vp.Height)
	}
	return v.vp.View()
}

// wrapDescription splits a description into lines that fit beside the
// list indent.
func (v *catalogView) wrapDescription(text string) []string {
	if v.vp.Width <= catalogIndent+10 {
		return []string{text}
	}
	wrapped := lipgloss.NewStyle().Width(v.vp.Width - catalogIndent).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// lines renders the list and reports the first and last line index of the
// cursor entry.
func (v *catalogView) lines() (lines []string, first, last int) {
	if v.filtering || v.filter != "" {
		prompt := formatter.StylePurple.Render("/") + " " + v.filter
		if v.filtering {
			prompt += "█"
		}
		lines = append(lines, "", "  "+prompt)
	}

	if len(v.careers) == 0 {
		return append(lines, "", "  "+formatter.Dim("No careers match.")), 0, 0
	}

	i := 0
	for _, cat := range v.categories {
		lines = append(lines, "")
		for _, l := range strings.Split(formatter.Header(cat.Title), "\n") {
			lines = append(lines, "  "+l)
		}
		for _, c := range cat.Careers {
			marker := "  "
			titleStyle := formatter.StyleBlue
			if i == v.cursor {
				marker = formatter.StylePurple.Render("▸ ")
				titleStyle = formatter.StyleBold
				first = len(lines)
			}
			lines = append(lines, fmt.Sprintf("  %s%s", marker, titleStyle.Render(c.Title)))
			for _, l := range v.wrapDescription(c.Description) {
				lines = append(lines, strings.Repeat(" ", catalogIndent)+formatter.Dim(l))
			}
			if i == v.cursor {
				last = len(lines) - 1
			}
			i++
		}
	}
	return lines, first, last
}
