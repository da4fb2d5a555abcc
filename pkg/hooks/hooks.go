// Package hooks drives the hook-management tool: it builds the
// registration command line, locates and parses the tool's YAML
// configuration, and inspects which git hooks the tool manages.
//
// hookup never writes into .git/hooks itself; that directory is owned
// by the tool.
package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hookup/pkg/errors"
)

// DefaultTool is the hook-management tool hookup bootstraps by default
const DefaultTool = "pre-commit"

// Git hook type names the tool can register
const (
	HookPreCommit        = "pre-commit"
	HookPreMergeCommit   = "pre-merge-commit"
	HookPrePush          = "pre-push"
	HookPrepareCommitMsg = "prepare-commit-msg"
	HookCommitMsg        = "commit-msg"
	HookPostCheckout     = "post-checkout"
	HookPostCommit       = "post-commit"
	HookPostMerge        = "post-merge"
	HookPostRewrite      = "post-rewrite"
)

// KnownHookTypes lists every hook type hookup understands
var KnownHookTypes = []string{
	HookPreCommit,
	HookPreMergeCommit,
	HookPrePush,
	HookPrepareCommitMsg,
	HookCommitMsg,
	HookPostCheckout,
	HookPostCommit,
	HookPostMerge,
	HookPostRewrite,
}

// ConfigFileNames are the tool config filenames probed at the repo root
var ConfigFileNames = []string{
	".pre-commit-config.yaml",
	".pre-commit-config.yml",
}

// InstallArgv builds the registration command line. With only the
// default hook type the tool's bare install subcommand suffices;
// additional types are passed explicitly.
func InstallArgv(tool string, hookTypes []string) []string {
	argv := []string{tool, "install"}
	if len(hookTypes) == 1 && hookTypes[0] == HookPreCommit {
		return argv
	}
	for _, t := range hookTypes {
		argv = append(argv, "--hook-type", t)
	}
	return argv
}

// Config models the subset of the tool's YAML configuration that
// status reporting needs
type Config struct {
	Repos                   []Repo   `yaml:"repos"`
	DefaultInstallHookTypes []string `yaml:"default_install_hook_types"`
}

// Repo is one hook source in the tool configuration
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev"`
	Hooks []Hook `yaml:"hooks"`
}

// Hook is a single configured hook
type Hook struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// HookCount returns the total number of configured hooks
func (c *Config) HookCount() int {
	n := 0
	for _, r := range c.Repos {
		n += len(r.Hooks)
	}
	return n
}

// FindConfig returns the path of the tool config file at repoRoot
func FindConfig(repoRoot string) (string, bool) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(repoRoot, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// LoadConfig parses the tool config file at path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	return &cfg, nil
}

// InstalledHooks returns the hook types in hooksDir whose hook files
// mention the tool, i.e. hooks the tool manages
func InstalledHooks(hooksDir, tool string) []string {
	var installed []string
	for _, hookType := range KnownHookTypes {
		data, err := os.ReadFile(filepath.Join(hooksDir, hookType))
		if err != nil {
			continue
		}
		if strings.Contains(string(data), tool) {
			installed = append(installed, hookType)
		}
	}
	return installed
}
