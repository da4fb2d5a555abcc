// Package status assembles the environment report for the status
// command: tool presence, package manager, repository and hook state.
package status

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/hookup/pkg/config"
	"github.com/arthur-debert/hookup/pkg/hooks"
	"github.com/arthur-debert/hookup/pkg/logging"
	"github.com/arthur-debert/hookup/pkg/paths"
	"github.com/arthur-debert/hookup/pkg/pkgmgr"
	"github.com/arthur-debert/hookup/pkg/style"
	"github.com/arthur-debert/hookup/pkg/tools"
)

// Report is a snapshot of the bootstrap-relevant environment
type Report struct {
	ToolName string
	Tool     tools.CheckResult

	// Manager is the package manager auto-detection would pick;
	// nil when none is available
	Manager *pkgmgr.Manager

	InRepo   bool
	RepoRoot string

	// ConfigPath is the tool's config file, empty when absent
	ConfigPath string
	HookCount  int

	// RegisteredHooks are hook types in .git/hooks managed by the tool
	RegisteredHooks []string
}

// Collect gathers the report. Read-only: nothing is installed or
// registered here.
func Collect(ctx context.Context, cfg *config.Config, p *paths.Paths) *Report {
	logger := logging.GetLogger("status")

	r := &Report{
		ToolName: cfg.Tool.Name,
		Tool:     tools.Check(ctx, cfg.Tool.Name),
		InRepo:   p.InRepo(),
		RepoRoot: p.RepoRoot(),
	}

	if m, err := pkgmgr.Select(cfg.Install.Manager); err == nil {
		r.Manager = &m
	}

	if !p.InRepo() {
		return r
	}

	if path, ok := hooks.FindConfig(p.RepoRoot()); ok {
		r.ConfigPath = path
		if hookCfg, err := hooks.LoadConfig(path); err == nil {
			r.HookCount = hookCfg.HookCount()
		} else {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to parse hook config")
		}
	}

	r.RegisteredHooks = hooks.InstalledHooks(p.HooksDir(), cfg.Tool.Name)
	return r
}

// Render writes the human-readable report
func Render(w io.Writer, r *Report) {
	fmt.Fprintln(w, style.TitleStyle.Render("hookup environment"))
	fmt.Fprintln(w)

	if r.Tool.Installed {
		version := r.Tool.Version
		if version == "" {
			version = "unknown version"
		}
		fmt.Fprintln(w, style.OK(fmt.Sprintf("%s %s (%s)", r.ToolName, version, r.Tool.Path)))
	} else {
		fmt.Fprintln(w, style.Missing(fmt.Sprintf("%s not found on PATH", r.ToolName)))
	}

	if r.Manager != nil {
		fmt.Fprintln(w, style.OK(fmt.Sprintf("package manager: %s", r.Manager.Name)))
	} else {
		fmt.Fprintln(w, style.Missing("no supported package manager on PATH"))
	}

	if !r.InRepo {
		fmt.Fprintln(w, style.Missing("not inside a git repository"))
		return
	}
	fmt.Fprintln(w, style.OK(fmt.Sprintf("repository: %s", r.RepoRoot)))

	if r.ConfigPath != "" {
		fmt.Fprintln(w, style.OK(fmt.Sprintf("hook config: %s (%d hooks)", r.ConfigPath, r.HookCount)))
	} else {
		fmt.Fprintln(w, style.Skipped("no hook config file (run 'hookup init' to create one)"))
	}

	if len(r.RegisteredHooks) > 0 {
		for _, h := range r.RegisteredHooks {
			fmt.Fprintln(w, style.OK(fmt.Sprintf("registered hook: %s", h)))
		}
	} else {
		fmt.Fprintln(w, style.Skipped("no hooks registered (run 'hookup up')"))
	}
}
