package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	kcl "kcl-lang.io/kcl-go"
)

// NewRunCmd returns the run command.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a KCL program with the segpath plugin available",
		Example: `  pathlex run main.k
  # where main.k contains:
  #   import kcl_plugin.segpath
  #   dir = segpath.dedot("charts/app/../base/")`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, cmdArgs []string) error {
			RegisterEnabledPlugins()

			slog.Debug("running kcl program", slog.String("file", cmdArgs[0]))

			result, err := kcl.Run(cmdArgs[0])
			if err != nil {
				return fmt.Errorf("run %s: %w", cmdArgs[0], err)
			}

			_, err = fmt.Fprint(cc.OutOrStdout(), result.GetRawYamlResult())
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}
}
