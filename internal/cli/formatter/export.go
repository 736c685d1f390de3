package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/astroverse/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects how the non-interactive commands encode their output.
// It implements pflag.Value so it can back a command-line flag directly.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func (f *Format) String() string { return string(*f) }

func (f *Format) Set(v string) error {
	switch Format(strings.ToLower(v)) {
	case FormatText, FormatYAML, FormatJSON:
		*f = Format(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("must be one of text, yaml, json")
}

func (f *Format) Type() string { return "format" }

// RoadmapDocument is the encoded form of a career roadmap, or of a subset
// of its stages.
type RoadmapDocument struct {
	Career domain.Career         `json:"career" yaml:"career"`
	Stages []domain.RoadmapStage `json:"stages" yaml:"stages"`
}

// WriteCatalog writes the categories in the requested format.
func WriteCatalog(w io.Writer, categories []domain.Category, f Format) error {
	if f != FormatText {
		return encode(w, categories, f)
	}
	var b strings.Builder
	for i, cat := range categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(cat.Title) + "\n")
		for _, c := range cat.Careers {
			fmt.Fprintf(&b, "  %s  %s\n", StyleBlue.Render(c.Title), Dim(string(c.ID)))
			fmt.Fprintf(&b, "    %s\n", StyleSky.Render(c.Description))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRoadmap writes a career's roadmap in the requested format.
func WriteRoadmap(w io.Writer, doc RoadmapDocument, f Format) error {
	if f != FormatText {
		return encode(w, doc, f)
	}
	out := StyleHeadline.Render(doc.Career.Title+" Roadmap") + "\n" +
		Dim(doc.Career.Description) + "\n\n" +
		StageList(doc.Stages)
	_, err := io.WriteString(w, out)
	return err
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
