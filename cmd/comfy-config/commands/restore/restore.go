// Package restore wires the restore command into the CLI.
package restore

import (
	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdrestore "github.com/drmbt/comfy-config/pkg/commands/restore"
)

// NewCommand creates the restore command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:     "restore [snapshot]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.LoadConfig()
			if err != nil {
				return err
			}

			var source string
			if len(args) > 0 {
				source = args[0]
			}

			return cmdrestore.Run(cmd.Context(), cmdrestore.Options{
				Config:   cfg,
				FS:       flags.FS(),
				Client:   flags.Client(cfg),
				Source:   source,
				Prompter: flags.Prompter(cfg),
				DryRun:   flags.DryRun,
			})
		},
	}
}
