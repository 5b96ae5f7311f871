// Package display renders command results for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/drmbt/comfy-config/pkg/symlink"
	"github.com/drmbt/comfy-config/pkg/types"
)

// column width for the status word
const statusWidth = 14

// RenderLinkResults renders the outcome of a link or unlink run
func RenderLinkResults(header string, results []types.LinkResult) string {
	var out strings.Builder
	out.WriteString(pterm.Bold.Sprint(header) + "\n")

	for _, r := range results {
		style := statusStyle(r.Status)
		line := fmt.Sprintf("  %s %-10s %s -> %s",
			style.Sprintf("%-*s", statusWidth, r.Status),
			r.Action.Name,
			r.Action.Target,
			r.Action.Source)
		out.WriteString(line + "\n")
		if r.Err != nil {
			out.WriteString(pterm.Error.MessageStyle.Sprintf("    %v", r.Err) + "\n")
		}
	}

	counts := summarize(results)
	if counts != "" {
		out.WriteString("\n" + counts + "\n")
	}
	return out.String()
}

// RenderVerifyResults renders the status command's link table
func RenderVerifyResults(results []symlink.VerifyResult) string {
	var out strings.Builder
	out.WriteString(pterm.Bold.Sprint("Links") + "\n")

	for _, r := range results {
		style := stateStyle(r.State)
		line := fmt.Sprintf("  %s %-10s %s",
			style.Sprintf("%-*s", statusWidth, r.State),
			r.Action.Name,
			r.Action.Target)
		if r.State == symlink.StateForeign {
			line += fmt.Sprintf(" (points at %s)", r.Dest)
		}
		out.WriteString(line + "\n")
	}
	return out.String()
}

func summarize(results []types.LinkResult) string {
	var created, replaced, skipped, failed int
	for _, r := range results {
		switch r.Status {
		case types.StatusCreated, types.StatusWouldCreate:
			created++
		case types.StatusReplaced:
			replaced++
		case types.StatusSkipped:
			skipped++
		case types.StatusError:
			failed++
		}
	}

	parts := []string{}
	if created > 0 {
		parts = append(parts, fmt.Sprintf("%d created", created))
	}
	if replaced > 0 {
		parts = append(parts, fmt.Sprintf("%d replaced", replaced))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	if failed > 0 {
		parts = append(parts, pterm.Error.MessageStyle.Sprintf("%d failed", failed))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ")
}

func statusStyle(status types.LinkStatus) *pterm.Style {
	switch status {
	case types.StatusCreated, types.StatusReplaced, types.StatusRemoved:
		return pterm.Success.MessageStyle
	case types.StatusWouldCreate:
		return pterm.Info.MessageStyle
	case types.StatusSkipped:
		return pterm.Warning.MessageStyle
	case types.StatusError:
		return pterm.Error.MessageStyle
	default:
		return pterm.Info.MessageStyle
	}
}

func stateStyle(state symlink.LinkState) *pterm.Style {
	switch state {
	case symlink.StateLinked:
		return pterm.Success.MessageStyle
	case symlink.StateMissing:
		return pterm.Warning.MessageStyle
	case symlink.StateForeign, symlink.StateBlocked:
		return pterm.Error.MessageStyle
	default:
		return pterm.Info.MessageStyle
	}
}
