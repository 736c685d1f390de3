package cli

import (
	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/spf13/pflag"
)

// addOutputFlag registers -o/--output on fs, defaulting to text.
func addOutputFlag(fs *pflag.FlagSet, f *formatter.Format) {
	*f = formatter.FormatText
	fs.VarP(f, "output", "o", "output format: text, yaml or json")
}
