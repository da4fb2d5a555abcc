// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate isolated test environments with a git repo fixture

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hookup/pkg/paths"
)

// TestEnvironment provides an isolated repository plus XDG layout.
// Everything lives under temp dirs; environment variables are scoped
// to the test via t.Setenv.
type TestEnvironment struct {
	RepoRoot  string
	HooksDir  string
	ConfigDir string
	StateDir  string

	Paths *paths.Paths

	t *testing.T
}

// NewTestEnvironment creates a temp git repository and points every
// hookup directory override into temp space
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	repoRoot := t.TempDir()
	hooksDir := filepath.Join(repoRoot, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		t.Fatalf("failed to create git fixture: %v", err)
	}

	configDir := t.TempDir()
	stateDir := t.TempDir()

	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvDataDir, t.TempDir())
	t.Setenv("XDG_STATE_HOME", stateDir)

	p, err := paths.New(repoRoot)
	if err != nil {
		t.Fatalf("failed to create paths: %v", err)
	}

	return &TestEnvironment{
		RepoRoot:  repoRoot,
		HooksDir:  hooksDir,
		ConfigDir: configDir,
		StateDir:  stateDir,
		Paths:     p,
		t:         t,
	}
}

// NewBareEnvironment is like NewTestEnvironment but without a git
// repository, for exercising not-a-repo behavior
func NewBareEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvDataDir, t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	p, err := paths.New(dir)
	if err != nil {
		t.Fatalf("failed to create paths: %v", err)
	}

	return &TestEnvironment{RepoRoot: dir, Paths: p, t: t}
}

// WriteRepoFile writes a file relative to the repository root
func (e *TestEnvironment) WriteRepoFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.RepoRoot, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent dirs for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
