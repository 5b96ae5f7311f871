package comfyconfig

// Message constants
const (
	MsgRootShort = "Configure a ComfyUI workspace from a project directory"
	MsgRootLong  = `comfy-config sets up a ComfyUI workspace from a project: it symlinks
the project's folders (models, input, output, workflows, snapshots) into
the workspace, copies ComfyUI-Manager configuration, restores extension
snapshots, and bootstraps the comfy CLI itself.

Configuration comes from comfy-config.toml, .env, and environment
variables; see 'comfy-config guide' for details.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagSkipPrompt  = "Never prompt; take defaults and skip unset steps"
	MsgFlagWorkspace   = "ComfyUI workspace path (overrides configuration)"
	MsgFlagProjectRoot = "Project directory (default: current directory)"
	MsgFlagEnvFile     = "Path to the .env file (default: <project-root>/.env)"
)
