// Package testutil provides shared test doubles for comfy-config tests.
package testutil

import (
	"context"
	"strings"

	cerr "github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/types"
)

// Call records one invocation made through a FakeRunner
type Call struct {
	Name string
	Args []string
}

// String renders the call as a single command line, the same form used
// as the scripting key.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeRunner is a scripted types.Runner. Commands are matched by their
// full command line; unscripted commands succeed with empty output.
type FakeRunner struct {
	Calls []Call

	results map[string]scripted
	queued  map[string][]scripted
	missing map[string]bool
}

type scripted struct {
	result types.CommandResult
	err    error
}

// NewFakeRunner creates an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		results: make(map[string]scripted),
		queued:  make(map[string][]scripted),
		missing: make(map[string]bool),
	}
}

// Respond scripts the result for an exact command line, e.g.
// "comfy which".
func (f *FakeRunner) Respond(commandLine string, result types.CommandResult, err error) {
	f.results[commandLine] = scripted{result: result, err: err}
}

// RespondOnce queues a one-shot result for a command line. Queued
// results are consumed in order before the Respond scripting applies.
func (f *FakeRunner) RespondOnce(commandLine string, result types.CommandResult, err error) {
	f.queued[commandLine] = append(f.queued[commandLine], scripted{result: result, err: err})
}

// RespondStdout scripts a successful command with the given stdout
func (f *FakeRunner) RespondStdout(commandLine, stdout string) {
	f.Respond(commandLine, types.CommandResult{Stdout: stdout}, nil)
}

// Fail scripts a non-zero exit for the given command line
func (f *FakeRunner) Fail(commandLine, stderr string) {
	f.Respond(commandLine,
		types.CommandResult{Stderr: stderr, ExitCode: 1},
		cerr.Newf(cerr.ErrCommandRun, "command failed: %s", commandLine))
}

// NotFound makes the given executable name behave as uninstalled
func (f *FakeRunner) NotFound(name string) {
	f.missing[name] = true
}

// Run implements types.Runner
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (types.CommandResult, error) {
	call := Call{Name: name, Args: args}
	f.Calls = append(f.Calls, call)

	if f.missing[name] {
		return types.CommandResult{}, cerr.Newf(cerr.ErrCommandNotFound, "command not found: %s", name)
	}
	if queue := f.queued[call.String()]; len(queue) > 0 {
		s := queue[0]
		f.queued[call.String()] = queue[1:]
		return s.result, s.err
	}
	if s, ok := f.results[call.String()]; ok {
		return s.result, s.err
	}
	return types.CommandResult{}, nil
}

// LookPath implements types.Runner
func (f *FakeRunner) LookPath(name string) bool {
	return !f.missing[name]
}

// CommandLines returns every recorded call as a command line string
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}
