package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/macropower/pathlex/pkg/segment"
)

// NewTokensCmd returns the tokens command.
func NewTokensCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens PATH",
		Short: "Show the segments a path tokenizes to",
		Example: `  pathlex tokens ./foo/../bar.txt
  pathlex tokens -o json 'C:\foo\bar'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			segs := paths[0].Segments()

			w := cc.OutOrStdout()
			p := NewPrinter(w, args)
			if p.format != OutputText {
				results := make([]segmentResult, 0, len(segs))
				for _, seg := range segs {
					results = append(results, segmentResult{Kind: seg.Kind.String(), Text: seg.String()})
				}

				return p.print("", results)
			}

			return writeSegmentTable(w, segs, args.UseColor(w))
		},
	}
}

var kindColors = map[segment.Kind]lipgloss.Color{
	segment.Separator: lipgloss.Color("8"),
	segment.Literal:   lipgloss.Color("12"),
	segment.Dot:       lipgloss.Color("11"),
	segment.DotDot:    lipgloss.Color("13"),
}

func writeSegmentTable(w io.Writer, segs []segment.Segment, color bool) error {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	header := r.NewStyle().Bold(true)
	index := r.NewStyle().Faint(true).Width(4).Align(lipgloss.Right)

	var b strings.Builder

	b.WriteString(header.Render(fmt.Sprintf("%4s  %-9s  %s", "#", "KIND", "TEXT")))
	b.WriteByte('\n')

	for i, seg := range segs {
		kind := r.NewStyle().Foreground(kindColors[seg.Kind]).Width(9)

		b.WriteString(index.Render(strconv.Itoa(i)))
		b.WriteString("  ")
		b.WriteString(kind.Render(seg.Kind.String()))
		b.WriteString("  ")
		b.WriteString(strconv.Quote(seg.String()))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
