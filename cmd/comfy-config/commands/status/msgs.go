package status

// Message constants
const (
	MsgShort = "Show the state of the workspace configuration"
	MsgLong  = `Status reports whether comfy-cli is available, which workspace is
active, the state of every configured link, and whether a
ComfyUI-Manager config.ini and snapshots are in place. Nothing is
changed.`

	MsgCLIFormat       = "comfy-cli:  %s\n"
	MsgActiveFormat    = "active:     %s\n"
	MsgWorkspaceFormat = "workspace:  %s\n"
	MsgManagerFormat   = "manager config: %s\n"
	MsgSnapshotsFormat = "snapshots:  %s\n"

	MsgInstalled    = "installed"
	MsgNotInstalled = "not installed"
	MsgPresent      = "present"
	MsgAbsent       = "absent"
)
