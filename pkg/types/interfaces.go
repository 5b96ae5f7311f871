package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for comfy-config operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// CommandResult captures the outcome of a subprocess invocation.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external commands. The comfy and pip invocations go
// through this interface so command logic can be tested without the
// binaries installed.
type Runner interface {
	// Run executes name with args and returns the captured output.
	// A non-zero exit is returned as an error with the result still
	// populated.
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)

	// LookPath reports whether name resolves to an executable.
	LookPath(name string) bool
}
