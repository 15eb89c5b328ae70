package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/pathlex/pkg/segpath"
)

// NewCwdCmd returns the cwd command.
func NewCwdCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "cwd",
		Short: "Print the current working directory",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			p, err := segpath.FromWorkingDirectory(args.source)
			if err != nil {
				return fmt.Errorf("cwd: %w", err)
			}

			slog.Debug("resolved working directory", slog.String("path", p.String()))

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(p)
		},
	}
}

// NewExeCmd returns the exe command.
func NewExeCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "exe",
		Short: "Print the path of the running executable",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			p, err := segpath.FromExecutable(args.source)
			if err != nil {
				return fmt.Errorf("exe: %w", err)
			}

			slog.Debug("resolved executable", slog.String("path", p.String()))

			return NewPrinter(cc.OutOrStdout(), args).PrintPath(p)
		},
	}
}
