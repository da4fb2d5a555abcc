// Package bootstrap implements the environment bootstrap sequence:
// detect the hook-management tool, install it when absent, register
// the repository's hooks through it, and print usage guidance.
//
// Steps run strictly in order and the first failure aborts the rest.
// Nothing is retried.
package bootstrap

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hookup/pkg/config"
	"github.com/arthur-debert/hookup/pkg/errors"
	"github.com/arthur-debert/hookup/pkg/guidance"
	"github.com/arthur-debert/hookup/pkg/hooks"
	"github.com/arthur-debert/hookup/pkg/logging"
	"github.com/arthur-debert/hookup/pkg/paths"
	"github.com/arthur-debert/hookup/pkg/pkgmgr"
)

// Step names, stable for tests and logs
const (
	StepDetect   = "detect"
	StepInstall  = "install"
	StepRegister = "register"
	StepReport   = "report"
)

// Status is the outcome of one step
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// StepResult records one step's outcome
type StepResult struct {
	Step     string
	Status   Status
	Message  string
	Duration time.Duration
	Err      error
}

// Options configures a Bootstrapper
type Options struct {
	Config *config.Config
	Paths  *paths.Paths
	Runner Runner
	Out    io.Writer

	// Logger overrides the package logger; nil uses it
	Logger *zerolog.Logger

	// DryRun previews the external commands without executing them
	DryRun bool

	// Force runs the installation step even when the tool is present
	Force bool

	// NoInstall skips the installation step entirely
	NoInstall bool

	// Manager overrides the configured package manager selection
	Manager string
}

// Bootstrapper executes the bootstrap sequence
type Bootstrapper struct {
	cfg       *config.Config
	paths     *paths.Paths
	runner    Runner
	out       io.Writer
	logger    zerolog.Logger
	dryRun    bool
	force     bool
	noInstall bool
	manager   string
}

// New creates a Bootstrapper
func New(opts Options) *Bootstrapper {
	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = logging.GetLogger("bootstrap")
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewRunner()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Bootstrapper{
		cfg:       opts.Config,
		paths:     opts.Paths,
		runner:    runner,
		out:       out,
		logger:    logger,
		dryRun:    opts.DryRun,
		force:     opts.Force,
		noInstall: opts.NoInstall,
		manager:   opts.Manager,
	}
}

// Up runs the bootstrap sequence. It returns the results of every step
// that ran; on failure the error belongs to the last result.
func (b *Bootstrapper) Up() ([]StepResult, error) {
	var results []StepResult

	present := b.detect(&results)

	if err := b.install(&results, present); err != nil {
		return results, err
	}

	if err := b.register(&results); err != nil {
		return results, err
	}

	b.report(&results)
	return results, nil
}

// detect resolves the tool on PATH. No side effects.
func (b *Bootstrapper) detect(results *[]StepResult) bool {
	start := time.Now()
	tool := b.cfg.Tool.Name

	path, err := b.runner.LookPath(tool)
	present := err == nil

	msg := fmt.Sprintf("%s not found on PATH", tool)
	if present {
		msg = fmt.Sprintf("%s found at %s", tool, path)
	}
	b.logger.Debug().Str("tool", tool).Bool("present", present).Msg("Tool detection")

	*results = append(*results, StepResult{
		Step:     StepDetect,
		Status:   StatusDone,
		Message:  msg,
		Duration: time.Since(start),
	})
	return present
}

// install runs the package manager when the tool is absent (or force
// is set). Exactly one invocation, fixed package name, non-interactive.
func (b *Bootstrapper) install(results *[]StepResult, present bool) error {
	start := time.Now()

	appendResult := func(status Status, msg string, err error) {
		*results = append(*results, StepResult{
			Step:     StepInstall,
			Status:   status,
			Message:  msg,
			Duration: time.Since(start),
			Err:      err,
		})
	}

	if present && !b.force {
		appendResult(StatusSkipped, fmt.Sprintf("%s already installed", b.cfg.Tool.Name), nil)
		return nil
	}
	if b.noInstall {
		appendResult(StatusSkipped, "installation disabled", nil)
		return nil
	}

	mgr, err := b.selectManager()
	if err != nil {
		appendResult(StatusFailed, "no usable package manager", err)
		return err
	}

	argv := mgr.InstallArgv(b.cfg.Tool.Package)
	cmd := Command{Name: argv[0], Args: argv[1:]}

	if b.dryRun {
		appendResult(StatusSkipped, fmt.Sprintf("dry run - would run: %s", cmd), nil)
		return nil
	}

	b.logger.Info().Str("manager", mgr.Name).Str("package", b.cfg.Tool.Package).Msg("Installing tool")
	if err := b.runner.Run(cmd); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrInstallFailed, "%s failed to install %s", mgr.Name, b.cfg.Tool.Package)
		appendResult(StatusFailed, cmd.String(), wrapped)
		return wrapped
	}

	appendResult(StatusDone, fmt.Sprintf("installed %s via %s", b.cfg.Tool.Package, mgr.Name), nil)
	return nil
}

// register invokes the tool's install subcommand unconditionally,
// whether the tool was pre-existing or freshly installed
func (b *Bootstrapper) register(results *[]StepResult) error {
	start := time.Now()

	appendResult := func(status Status, msg string, err error) {
		*results = append(*results, StepResult{
			Step:     StepRegister,
			Status:   status,
			Message:  msg,
			Duration: time.Since(start),
			Err:      err,
		})
	}

	if !b.paths.InRepo() {
		err := errors.New(errors.ErrNotARepo, "not inside a git repository")
		appendResult(StatusFailed, "hook registration requires a repository", err)
		return err
	}

	argv := hooks.InstallArgv(b.cfg.Tool.Name, b.cfg.Install.HookTypes)
	cmd := Command{Name: argv[0], Args: argv[1:], Dir: b.paths.RepoRoot()}

	if b.dryRun {
		appendResult(StatusSkipped, fmt.Sprintf("dry run - would run: %s", cmd), nil)
		return nil
	}

	b.logger.Info().Str("repo", b.paths.RepoRoot()).Strs("hook_types", b.cfg.Install.HookTypes).Msg("Registering hooks")
	if err := b.runner.Run(cmd); err != nil {
		var wrapped error
		if stderrors.Is(err, exec.ErrNotFound) {
			wrapped = errors.Wrapf(err, errors.ErrToolNotFound, "%s is not installed", b.cfg.Tool.Name)
		} else {
			wrapped = errors.Wrapf(err, errors.ErrHooksFailed, "%s failed to register hooks", b.cfg.Tool.Name)
		}
		appendResult(StatusFailed, cmd.String(), wrapped)
		return wrapped
	}

	appendResult(StatusDone, "hooks registered", nil)
	return nil
}

// report prints the success banner. Skipped on dry runs, where no
// hooks were actually registered.
func (b *Bootstrapper) report(results *[]StepResult) {
	start := time.Now()

	if b.dryRun {
		*results = append(*results, StepResult{
			Step:     StepReport,
			Status:   StatusSkipped,
			Message:  "dry run - no changes made",
			Duration: time.Since(start),
		})
		return
	}

	guidance.Banner(b.out, b.cfg.Tool.Name)
	*results = append(*results, StepResult{
		Step:     StepReport,
		Status:   StatusDone,
		Message:  "usage guidance printed",
		Duration: time.Since(start),
	})
}

// selectManager resolves the package manager through the Runner so
// tests control what counts as available
func (b *Bootstrapper) selectManager() (pkgmgr.Manager, error) {
	name := b.manager
	if name == "" {
		name = b.cfg.Install.Manager
	}
	if name != "" && name != "auto" {
		return pkgmgr.Get(name)
	}

	for _, m := range pkgmgr.Registry() {
		if _, err := b.runner.LookPath(m.Bin); err == nil {
			return m, nil
		}
	}
	return pkgmgr.Manager{}, errors.New(errors.ErrManagerNotFound, "no supported package manager found on PATH")
}
