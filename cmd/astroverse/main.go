package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/astroverse/internal/catalog"
	"github.com/alexanderramin/astroverse/internal/cli"
	"github.com/alexanderramin/astroverse/internal/config"
	"github.com/alexanderramin/astroverse/internal/navigation"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg := config.LoadConfig()

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	logOut, closeLog, err := cfg.OpenLog()
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeInto(&err, closeLog, "closing log file")

	app := &cli.App{
		Catalog:  cat,
		Config:   cfg,
		Observer: navigation.NewLogObserver(logOut, cfg.LogLevel, "session", uuid.NewString()),
	}

	// Detect interactive terminal for the full-screen portal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// closeInto runs closeFn and, if run has not already failed, reports its
// error through errp.
func closeInto(errp *error, closeFn func() error, what string) {
	if cerr := closeFn(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("%s: %w", what, cerr)
	}
}
