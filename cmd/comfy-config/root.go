// Package comfyconfig assembles the comfy-config command line interface.
package comfyconfig

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/genconfig"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/guide"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/link"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/manager"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/restore"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/setup"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/status"
	"github.com/drmbt/comfy-config/cmd/comfy-config/commands/unlink"
	"github.com/drmbt/comfy-config/cmd/comfy-config/internal/cmdutil"
	"github.com/drmbt/comfy-config/internal/version"
	"github.com/drmbt/comfy-config/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &cmdutil.Flags{}

	rootCmd := &cobra.Command{
		Use:     "comfy-config",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help and fail
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.Verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.DryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&flags.SkipPrompt, "skip-prompt", false, MsgFlagSkipPrompt)
	rootCmd.PersistentFlags().StringVar(&flags.Workspace, "workspace", "", MsgFlagWorkspace)
	rootCmd.PersistentFlags().StringVar(&flags.ProjectRoot, "project-root", "", MsgFlagProjectRoot)
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", "", MsgFlagEnvFile)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(setup.NewCommand(flags))
	rootCmd.AddCommand(link.NewCommand(flags))
	rootCmd.AddCommand(unlink.NewCommand(flags))
	rootCmd.AddCommand(manager.NewCommand(flags))
	rootCmd.AddCommand(restore.NewCommand(flags))
	rootCmd.AddCommand(status.NewCommand(flags))
	rootCmd.AddCommand(genconfig.NewCommand(flags))
	rootCmd.AddCommand(guide.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "comfy-config version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
