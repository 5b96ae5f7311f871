package setup

// Message constants
const (
	MsgShort = "Run the full workspace setup"
	MsgLong  = `Setup bootstraps a ComfyUI workspace from this project: it installs
comfy-cli if needed, resolves or installs the workspace, replaces the
configured workspace folders with symlinks into the project, copies the
ComfyUI-Manager config.ini, and restores an extension snapshot.

Failures in the link, manager, and snapshot steps are reported as
warnings; only an unresolvable workspace aborts the run.`
	MsgExample = `  comfy-config setup                    # Interactive setup
  comfy-config setup --skip-prompt      # Take every default, skip unset steps
  comfy-config setup --dry-run          # Show what would happen`

	MsgWorkspaceFormat = "Workspace: %s\n"
	MsgLinksHeader     = "Links"
	MsgWarningFormat   = "warning: %s\n"
	MsgDryRunNotice    = "\nDRY RUN MODE - No changes were made"
)
