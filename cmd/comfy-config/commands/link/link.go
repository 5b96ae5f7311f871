// Package link wires the link command into the CLI.
package link

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdlink "github.com/drmbt/comfy-config/pkg/commands/link"
	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/display"
)

// NewCommand creates the link command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:     "link",
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

			results, err := cmdlink.Run(cmdlink.Options{
				Config:      cfg,
				FS:          flags.FS(),
				ProjectRoot: flags.Root(),
				Prompter:    flags.Prompter(cfg),
				DryRun:      flags.DryRun,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), display.RenderLinkResults(MsgHeader, results))
			if flags.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			if types.Failed(results) {
				return errors.New(errors.ErrLinkCreate, "some links failed")
			}
			return nil
		},
	}
}
