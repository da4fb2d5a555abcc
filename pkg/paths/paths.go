// Package paths provides centralized path handling for hookup.
// It implements XDG Base Directory specification compliance and
// resolves the git repository layout the hook tool operates on.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hookup/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for hookup
	EnvConfigDir = "HOOKUP_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for hookup
	EnvDataDir = "HOOKUP_DATA_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for hookup-specific files
	AppDirName = "hookup"

	// ConfigFileName is the name of the hookup configuration file
	ConfigFileName = "hookup.toml"

	// LogFileName is the name of the log file
	LogFileName = "hookup.log"

	// GitDirName is the repository metadata directory
	GitDirName = ".git"

	// HooksDirName is the hooks subdirectory inside the git dir
	HooksDirName = "hooks"
)

// Paths resolves repository-relative locations for a single invocation.
// The zero repoRoot means the start directory is not inside a repository.
type Paths struct {
	repoRoot string
	gitDir   string
}

// New creates a Paths instance rooted at startDir (the current directory
// when empty). Not being inside a git repository is not an error here;
// callers that require a repository check InRepo.
func New(startDir string) (*Paths, error) {
	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
		}
		startDir = cwd
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid start directory %q", startDir)
	}

	root, gitDir := findGitRoot(abs)
	return &Paths{repoRoot: root, gitDir: gitDir}, nil
}

// RepoRoot returns the repository root, or "" when not inside one
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// InRepo reports whether the start directory was inside a git repository
func (p *Paths) InRepo() bool {
	return p.repoRoot != ""
}

// GitDir returns the resolved .git directory, or "" when not in a repo
func (p *Paths) GitDir() string {
	return p.gitDir
}

// HooksDir returns the repository's hooks directory.
// Hook files there are written by the hook tool, never by hookup itself.
func (p *Paths) HooksDir() string {
	if p.gitDir == "" {
		return ""
	}
	return filepath.Join(p.gitDir, HooksDirName)
}

// RepoConfigPath returns the path of a repository-level hookup.toml
func (p *Paths) RepoConfigPath() string {
	if p.repoRoot == "" {
		return ""
	}
	return filepath.Join(p.repoRoot, ConfigFileName)
}

// ConfigDir returns hookup's config directory, honoring the
// HOOKUP_CONFIG_DIR override before falling back to XDG
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the user-level hookup.toml path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DataDir returns hookup's data directory, honoring the
// HOOKUP_DATA_DIR override before falling back to XDG
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// findGitRoot walks up from dir looking for a .git entry. It returns the
// repository root and the resolved git dir, or empty strings when no
// repository contains dir. A .git file (worktrees, submodules) is followed
// to its real git dir.
func findGitRoot(dir string) (string, string) {
	for {
		gitPath := filepath.Join(dir, GitDirName)
		info, err := os.Stat(gitPath)
		if err == nil {
			if info.IsDir() {
				return dir, gitPath
			}
			if resolved := resolveGitFile(dir, gitPath); resolved != "" {
				return dir, resolved
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

// resolveGitFile reads a "gitdir: <path>" pointer file
func resolveGitFile(dir, gitPath string) string {
	data, err := os.ReadFile(gitPath)
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(data))
	target, found := strings.CutPrefix(line, "gitdir:")
	if !found {
		return ""
	}
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target)
}
