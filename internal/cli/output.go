package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/macropower/pathlex/pkg/segpath"
)

type pathResult struct {
	Path     *segpath.Path `json:"path"               yaml:"path"`
	Platform string        `json:"platform,omitempty" yaml:"platform,omitempty"`
}

type extensionResult struct {
	Path      *segpath.Path `json:"path"      yaml:"path"`
	Extension string        `json:"extension" yaml:"extension"`
	Stem      string        `json:"stem"      yaml:"stem"`
}

type segmentResult struct {
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

// Printer writes command results in the selected output format.
type Printer struct {
	w        io.Writer
	format   string
	platform bool
}

func NewPrinter(w io.Writer, args *RootArgs) *Printer {
	return &Printer{
		w:        w,
		format:   args.GetOutput(),
		platform: args.GetPlatform(),
	}
}

// PrintPath writes p, rendered with the host separator when requested.
func (p *Printer) PrintPath(path *segpath.Path) error {
	r := pathResult{Path: path}
	if p.platform {
		r.Platform = path.Platform()
	}

	text := path.String()
	if p.platform {
		text = r.Platform
	}

	return p.print(text, r)
}

// print writes text in text mode, and v otherwise.
func (p *Printer) print(text string, v any) error {
	switch p.format {
	case OutputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}

		return nil

	case OutputYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}

		return nil
	}

	_, err := fmt.Fprintln(p.w, text)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
