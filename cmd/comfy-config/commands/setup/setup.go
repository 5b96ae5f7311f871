// Package setup wires the setup command into the CLI.
package setup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdsetup "github.com/drmbt/comfy-config/pkg/commands/setup"
	"github.com/drmbt/comfy-config/pkg/ui/display"
)

// NewCommand creates the setup command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.LoadConfig()
			if err != nil {
				return err
			}

			result, err := cmdsetup.Run(cmd.Context(), cmdsetup.Options{
				Config:      cfg,
				FS:          flags.FS(),
				Client:      flags.Client(cfg),
				ProjectRoot: flags.Root(),
				Prompter:    flags.Prompter(cfg),
				DryRun:      flags.DryRun,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgWorkspaceFormat, result.Workspace)
			fmt.Fprintln(cmd.OutOrStdout(), display.RenderLinkResults(MsgLinksHeader, result.Links))
			for _, warning := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgWarningFormat, warning)
			}
			if flags.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
	}
}
