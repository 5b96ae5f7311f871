// Package symlink plans and executes the symlinks between a project
// directory and a ComfyUI workspace.
//
// Planning resolves requested folders to (source, target) pairs and
// rejects conflicting plans before anything is mutated. Execution
// replaces whatever sits at each target (file, directory or stale link)
// with a symlink to the source; failures on one link don't stop the
// rest. Unlink only ever removes links the plan owns.
package symlink
