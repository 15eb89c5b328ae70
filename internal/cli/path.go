package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlex/pkg/segpath"
)

var ErrNoExtension = errors.New("no extension")

func parseArgs(args []string) ([]*segpath.Path, error) {
	paths := make([]*segpath.Path, 0, len(args))
	for _, arg := range args {
		p, err := segpath.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		paths = append(paths, p)
	}

	return paths, nil
}

// NewDedotCmd returns the dedot command.
func NewDedotCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "dedot PATH",
		Short: "Remove '.' and collapse '..' components",
		Example: `  pathlex dedot C:/foo/bar/../
  # C:/foo/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			slog.Debug("dedot", slog.String("path", paths[0].String()))

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(paths[0].Dedot())
		},
	}
}

// NewAppendCmd returns the append command.
func NewAppendCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "append PATH OTHER...",
		Short: "Join paths with exactly one separator between each",
		Example: `  pathlex append C:/ ./foo/ bar
  # C:/foo/bar`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			result := paths[0]
			for _, other := range paths[1:] {
				slog.Debug("append",
					slog.String("path", result.String()),
					slog.String("other", other.String()),
				)

				result = result.Append(other)
			}

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(result)
		},
	}
}

// NewRelativeToCmd returns the relative-to command.
func NewRelativeToCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "relative-to PATH BASE",
		Short: "Resolve PATH against BASE",
		Example: `  pathlex relative-to ./foo C:/bar/
  # C:/bar/foo`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			slog.Debug("relative to",
				slog.String("path", paths[0].String()),
				slog.String("base", paths[1].String()),
			)

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(paths[0].RelativeTo(paths[1]))
		},
	}
}

// NewRelativeFromCmd returns the relative-from command.
func NewRelativeFromCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "relative-from PATH BASE",
		Short: "Express PATH relative to BASE",
		Example: `  pathlex relative-from C:/bar/foo.bar C:/bar/
  # ./foo.bar`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			slog.Debug("relative from",
				slog.String("path", paths[0].String()),
				slog.String("base", paths[1].String()),
			)

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(paths[0].RelativeFrom(paths[1]))
		},
	}
}

// NewPushCmd returns the push command.
func NewPushCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "push PATH NAME...",
		Short: "Append names as new components",
		Example: `  pathlex push C:/foo bar baz.txt
  # C:/foo/bar/baz.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs[:1])
			if err != nil {
				return err
			}

			p := paths[0]
			for _, name := range cmdArgs[1:] {
				p.Push(name)
			}

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(p)
		},
	}
}

// NewPopCmd returns the pop command.
func NewPopCmd(args *RootArgs) *cobra.Command {
	count := new(int)

	cmd := &cobra.Command{
		Use:   "pop PATH",
		Short: "Remove trailing components",
		Example: `  pathlex pop C:/foo/bar/
  # C:/foo/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			if *count < 0 {
				return fmt.Errorf("%w: count must not be negative", ErrInvalidArgument)
			}

			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			p := paths[0]
			for range *count {
				p.Pop()
			}

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(p)
		},
	}

	cmd.Flags().IntVarP(count, "count", "n", 1, "Number of components to remove")

	return cmd
}

// NewExtCmd returns the ext command.
func NewExtCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "ext PATH",
		Short: "Print the extension of the final component",
		Example: `  pathlex ext ./.bar.foo
  # foo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			paths, err := parseArgs(cmdArgs)
			if err != nil {
				return err
			}

			p := paths[0]

			ext, ok := p.Extension()
			if !ok {
				return fmt.Errorf("%w: %s", ErrNoExtension, p)
			}

			stem, _ := p.Stem()

			return NewPrinter(cc.OutOrStdout(), args).print(ext, extensionResult{
				Path:      p,
				Extension: ext,
				Stem:      stem,
			})
		},
	}
}
