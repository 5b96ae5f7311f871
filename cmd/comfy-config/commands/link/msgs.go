package link

// Message constants
const (
	MsgShort = "Symlink project folders into the workspace"
	MsgLong  = `Link replaces the configured workspace folders (models, input, output,
workflows, snapshots) with symlinks pointing into this project, and links
any settings files found in the project root.

Existing workspace content at a link target is removed first. Folders
without a configured source are skipped.`
	MsgExample = `  comfy-config link                     # Link configured folders
  comfy-config link --dry-run           # Preview without changes
  comfy-config link --workspace ~/Comfy # Link into a specific workspace`

	MsgHeader       = "Links"
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
)
