package cli

import (
	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/alexanderramin/astroverse/internal/config"
	"github.com/alexanderramin/astroverse/internal/domain"
	"github.com/alexanderramin/astroverse/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds what the commands need. Zero-valued hooks fall back to the real
// terminal implementations.
type App struct {
	Catalog  *catalog.Catalog
	Config   config.Config
	Observer navigation.Observer

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// RunProgram runs the full-screen TUI.
	RunProgram func(m tea.Model, opts ...tea.ProgramOption) error

	// PickCareer prompts for a career when a command needs one.
	PickCareer func(c *catalog.Catalog) (domain.CareerID, error)
}

func (a *App) catalog() *catalog.Catalog {
	if a.Catalog != nil {
		return a.Catalog
	}
	return catalog.Default()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "astroverse" command. Without a
// subcommand it opens the portal, or prints the catalog when stdin is not a
// terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "astroverse",
		Short:         "Explore space careers and their education roadmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return formatter.WriteCatalog(cmd.OutOrStdout(), app.catalog().Categories(), formatter.FormatText)
			}
			return runPortal(app)
		},
	}

	root.AddCommand(
		newCareersCmd(app),
		newRoadmapCmd(app),
	)

	return root
}
