// Package genconfig wires the genconfig command into the CLI.
package genconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	cmdgenconfig "github.com/drmbt/comfy-config/pkg/commands/genconfig"
)

// NewCommand creates the genconfig command
func NewCommand(flags *cmdutil.Flags) *cobra.Command {
	var write bool
	var env bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := cmdgenconfig.Run(cmdgenconfig.Options{
				ProjectRoot: flags.Root(),
				Write:       write,
				EnvExample:  env,
			})
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				if env {
					fmt.Fprint(cmd.OutOrStdout(), "\n"+result.EnvContent)
				}
				return nil
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(cmd.OutOrStdout(), MsgWrittenFormat, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&env, "env", false, MsgFlagEnv)
	return cmd
}
