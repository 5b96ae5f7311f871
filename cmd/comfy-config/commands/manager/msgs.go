package manager

// Message constants
const (
	MsgShort = "Copy a ComfyUI-Manager config.ini into the workspace"
	MsgLong  = `Manager copies a ComfyUI-Manager config.ini into the workspace profile,
replacing whatever is there. The source comes from --config, the
MANAGER_CONFIG variable, or the project configuration; without one the
command prompts, or skips when prompts are off.`
	MsgExample = `  comfy-config manager                      # Use the configured config.ini
  comfy-config manager --config ./my.ini    # Copy a specific file`

	MsgFlagConfig = "Path to the config.ini to copy"
)
