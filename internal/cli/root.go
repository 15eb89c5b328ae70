package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/pathlex/internal/version"
	"github.com/macropower/pathlex/pkg/log"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string, opts ...RootOption) *cobra.Command {
	args := NewRootArgs()
	for _, opt := range opts {
		opt(args)
	}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", log.DefaultLevel("warn"),
		"Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", log.DefaultFormat(log.FormatText),
		"Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.output, "output", "o", OutputText,
		"Set the output format (text, json, yaml)")
	cmd.PersistentFlags().StringVar(args.color, "color", ColorAuto,
		"Style text output (auto, always, never)")
	cmd.PersistentFlags().BoolVar(args.platform, "platform", false,
		"Render paths with the host separator instead of '/'")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		if err := args.Validate(); err != nil {
			merr = multierror.Append(merr, err)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), args.GetLogLevel(), args.GetLogFormat())
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %w", ErrLogHandlerFailed, err))
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.AddCommand(NewTokensCmd(args))
	cmd.AddCommand(NewDedotCmd(args))
	cmd.AddCommand(NewAppendCmd(args))
	cmd.AddCommand(NewRelativeToCmd(args))
	cmd.AddCommand(NewRelativeFromCmd(args))
	cmd.AddCommand(NewPushCmd(args))
	cmd.AddCommand(NewPopCmd(args))
	cmd.AddCommand(NewExtCmd(args))
	cmd.AddCommand(NewCwdCmd(args))
	cmd.AddCommand(NewExeCmd(args))
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the pathlex CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(version.String())
		},
	}
}
