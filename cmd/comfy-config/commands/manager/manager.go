// Package manager wires the manager command into the CLI.
package manager

import (
	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdmanager "github.com/drmbt/comfy-config/pkg/commands/manager"
)

// NewCommand creates the manager command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:     "manager",
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

			return cmdmanager.Run(cmdmanager.Options{
				Config:   cfg,
				FS:       flags.FS(),
				Source:   source,
				Prompter: flags.Prompter(cfg),
				DryRun:   flags.DryRun,
			})
		},
	}

	cmd.Flags().StringVar(&source, "config", "", MsgFlagConfig)
	return cmd
}
