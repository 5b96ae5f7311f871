// Package guide shows the embedded user guide.
package guide

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/drmbt/comfy-config/pkg/ui"
)

//go:embed guide.md
var guideMarkdown string

// NewCommand creates the guide command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Plain markdown when the output is piped
			if ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			rendered, err := renderer.Render(guideMarkdown)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
