package guide

// Message constants
const (
	MsgShort = "Show the comfy-config user guide"
)
