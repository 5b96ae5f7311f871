package unlink

// Message constants
const (
	MsgShort = "Remove the symlinks created by link"
	MsgLong  = `Unlink removes the workspace symlinks that point into this project.
Targets that are regular files, directories, or symlinks pointing
elsewhere are left alone; the project directories themselves are never
touched.`

	MsgHeader = "Unlinked"
)
