package cli

import (
	"strings"

	"github.com/alexanderramin/astroverse/internal/config"
	"github.com/charmbracelet/glamour"
)

// newStageRenderer returns a function that renders stage text through
// glamour, wrapping at the configured width or at maxWidth if that is
// narrower. Renderers are built per wrap width and reused. If one cannot be
// built or fails on some input, the text is returned trimmed but otherwise
// untouched.
func newStageRenderer(cfg config.Config) func(text string, maxWidth int) string {
	renderers := make(map[int]*glamour.TermRenderer)

	return func(text string, maxWidth int) string {
		wrap := cfg.WrapWidth
		if maxWidth > 0 {
			wrap = max(min(wrap, maxWidth), 10)
		}

		r, ok := renderers[wrap]
		if !ok {
			var err error
			r, err = glamour.NewTermRenderer(
				glamour.WithStandardStyle(cfg.Style),
				glamour.WithWordWrap(wrap),
			)
			if err != nil {
				return plainRender(text)
			}
			renderers[wrap] = r
		}

		out, err := r.Render(text)
		if err != nil {
			return plainRender(text)
		}
		return strings.Trim(out, "\n")
	}
}

func plainRender(text string) string {
	return strings.TrimSpace(text)
}
