// pkg/testutil/runner.go
// DEPENDENCIES: pkg/bootstrap
// PURPOSE: Recording fake Runner for bootstrap tests

package testutil

import (
	"os/exec"

	"github.com/arthur-debert/hookup/pkg/bootstrap"
)

// FakeRunner records every invocation and answers PATH lookups from a
// fixed map. It never touches the real system.
type FakeRunner struct {
	// Bins maps executable names to fake paths for LookPath
	Bins map[string]string

	// RunErrs maps an executable name to the error its Run returns
	RunErrs map[string]error

	// Commands records every Run invocation in order
	Commands []bootstrap.Command
}

// NewFakeRunner creates a FakeRunner with the given executables present
func NewFakeRunner(bins ...string) *FakeRunner {
	r := &FakeRunner{
		Bins:    make(map[string]string),
		RunErrs: make(map[string]error),
	}
	for _, b := range bins {
		r.Bins[b] = "/usr/bin/" + b
	}
	return r
}

// LookPath implements bootstrap.Runner
func (r *FakeRunner) LookPath(name string) (string, error) {
	if path, ok := r.Bins[name]; ok {
		return path, nil
	}
	return "", exec.ErrNotFound
}

// Run implements bootstrap.Runner
func (r *FakeRunner) Run(cmd bootstrap.Command) error {
	r.Commands = append(r.Commands, cmd)
	return r.RunErrs[cmd.Name]
}

// RunsOf returns the recorded commands whose executable is name
func (r *FakeRunner) RunsOf(name string) []bootstrap.Command {
	var out []bootstrap.Command
	for _, c := range r.Commands {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
