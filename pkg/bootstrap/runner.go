package bootstrap

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/hookup/pkg/logging"
)

// Command is one external process invocation
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command the way a shell prompt would show it
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner abstracts process execution and PATH resolution so the
// bootstrap steps can be tested against a recording fake
type Runner interface {
	// LookPath resolves an executable name on PATH
	LookPath(name string) (string, error)

	// Run executes the command, blocking until it exits.
	// The command inherits our stdio; its natural error text is the
	// only output the user sees on failure.
	Run(cmd Command) error
}

type execRunner struct{}

// NewRunner returns the Runner backed by os/exec
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) Run(c Command) error {
	logging.LogCommand(c.Name, c.Args)

	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExitCode maps an error to the process exit status to propagate:
// the failing command's own code when available, 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
