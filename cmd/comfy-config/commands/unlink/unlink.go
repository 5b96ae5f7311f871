// Package unlink wires the unlink command into the CLI.
package unlink

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdunlink "github.com/drmbt/comfy-config/pkg/commands/unlink"
	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/types"
	"github.com/drmbt/comfy-config/pkg/ui/display"
)

// NewCommand creates the unlink command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:     "unlink",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.LoadConfig()
			if err != nil {
				return err
			}

			results, err := cmdunlink.Run(cmdunlink.Options{
				Config:      cfg,
				FS:          flags.FS(),
				ProjectRoot: flags.Root(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), display.RenderLinkResults(MsgHeader, results))
			if types.Failed(results) {
				return errors.New(errors.ErrLinkRemove, "some links failed to remove")
			}
			return nil
		},
	}
}
