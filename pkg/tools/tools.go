// Package tools detects the hook-management tool on the execution
// search path and probes its version for status reporting.
package tools

import (
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/arthur-debert/hookup/pkg/logging"
)

// versionProbeTimeout bounds the informational version probe.
// The bootstrap steps themselves run unbounded.
const versionProbeTimeout = 3 * time.Second

// CheckResult describes a tool presence probe
type CheckResult struct {
	Installed bool
	Path      string // resolved executable path, empty when absent
	Version   string // best-effort, empty when the probe fails
}

// Lookup reports whether an executable resolves on PATH.
// It has no side effects.
func Lookup(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// Check probes for the tool and, when present, asks it for its version.
// A failed version probe still counts as installed.
func Check(ctx context.Context, name string) CheckResult {
	logger := logging.GetLogger("tools")

	path, ok := Lookup(name)
	if !ok {
		logger.Debug().Str("tool", name).Msg("Tool not found on PATH")
		return CheckResult{Installed: false}
	}

	probeCtx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := runCmd(probeCtx, path, "--version")
	if err != nil {
		logger.Debug().Err(err).Str("tool", name).Msg("Version probe failed")
		return CheckResult{Installed: true, Path: path}
	}

	return CheckResult{Installed: true, Path: path, Version: ParseVersion(out)}
}

var versionRe = regexp.MustCompile(`(?i)\bv?(\d+\.\d+(?:\.\d+)?(?:[\w.-]+)?)\b`)

// ParseVersion extracts a version number from tool output like
// "pre-commit 3.7.1"
func ParseVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	line := strings.Split(s, "\n")[0]
	if m := versionRe.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	return ""
}

// runCmd executes a command and returns combined output as string
func runCmd(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid pagers and color escapes in probe output
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", ctx.Err()
	}
	return string(out), err
}
