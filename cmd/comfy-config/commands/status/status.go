// Package status wires the status command into the CLI.
package status

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdstatus "github.com/drmbt/comfy-config/pkg/commands/status"
	"github.com/drmbt/comfy-config/pkg/ui/display"
)

// NewCommand creates the status command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.LoadConfig()
			if err != nil {
				return err
			}

			report, err := cmdstatus.Run(cmd.Context(), cmdstatus.Options{
				Config:      cfg,
				FS:          flags.FS(),
				Client:      flags.Client(cfg),
				ProjectRoot: flags.Root(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			cli := MsgNotInstalled
			if report.CLIInstalled {
				cli = MsgInstalled
			}
			fmt.Fprintf(out, MsgCLIFormat, cli)

			if report.ActiveWorkspace != "" {
				fmt.Fprintf(out, MsgActiveFormat, report.ActiveWorkspace)
			}
			fmt.Fprintf(out, MsgWorkspaceFormat, report.Workspace)

			fmt.Fprintln(out)
			fmt.Fprintln(out, display.RenderVerifyResults(report.Links))

			managed := MsgAbsent
			if report.ManagerConfigured {
				managed = MsgPresent
			}
			fmt.Fprintf(out, MsgManagerFormat, managed)

			if len(report.Snapshots) > 0 {
				fmt.Fprintf(out, MsgSnapshotsFormat, strings.Join(report.Snapshots, ", "))
			}
			return nil
		},
	}
}
