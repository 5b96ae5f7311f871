package genconfig

// Message constants
const (
	MsgShort = "Generate a starter project configuration"
	MsgLong  = `Output the default configuration to stdout or write it to the project
root as comfy-config.toml. Existing files are never overwritten.`
	MsgExample = `  comfy-config genconfig              # Output to stdout
  comfy-config genconfig -w           # Write ./comfy-config.toml
  comfy-config genconfig -w --env     # Also write a .env example`

	MsgFlagWrite     = "Write files instead of printing to stdout"
	MsgFlagEnv       = "Also generate a .env example"
	MsgWrittenFormat = "Written %s\n"
)
