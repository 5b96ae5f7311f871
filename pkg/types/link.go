package types

// LinkKind distinguishes directory links from single-file links. The two
// differ in how a missing source is treated: directory sources are created
// on demand, file sources are skipped with a warning.
type LinkKind int

const (
	// LinkDir links a whole directory into the workspace
	LinkDir LinkKind = iota
	// LinkFile links a single file (settings files)
	LinkFile
)

// LinkSpec describes one requested symlink before planning: a folder or
// file name, where its contents live in the project, and what kind of
// source it is.
type LinkSpec struct {
	Name   string
	Source string
	Kind   LinkKind
}

// LinkAction is a planned symlink: the absolute source and the resolved
// target inside the workspace.
type LinkAction struct {
	Name   string
	Source string
	Target string
	Kind   LinkKind
}

// LinkStatus describes what happened (or would happen) to a single link
type LinkStatus string

const (
	// StatusCreated means the symlink was created at a previously empty target
	StatusCreated LinkStatus = "created"
	// StatusReplaced means an existing file, directory or link was removed first
	StatusReplaced LinkStatus = "replaced"
	// StatusSkipped means the source was missing and nothing was mutated
	StatusSkipped LinkStatus = "skipped"
	// StatusWouldCreate is reported in dry-run mode instead of mutating
	StatusWouldCreate LinkStatus = "would-create"
	// StatusRemoved means an owned symlink was removed (unlink)
	StatusRemoved LinkStatus = "removed"
	// StatusError means the operation failed; Err carries the cause
	StatusError LinkStatus = "error"
)

// LinkResult is the outcome of executing one LinkAction
type LinkResult struct {
	Action LinkAction
	Status LinkStatus
	Err    error
}

// Failed reports whether any result in results carries an error status
func Failed(results []LinkResult) bool {
	for _, r := range results {
		if r.Status == StatusError {
			return true
		}
	}
	return false
}
