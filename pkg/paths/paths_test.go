// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test git repository discovery and XDG overrides

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hookup/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsideRepo(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git", "hooks"), 0755))

	p, err := paths.New(repo)
	require.NoError(t, err)

	assert.True(t, p.InRepo())
	assert.Equal(t, repo, p.RepoRoot())
	assert.Equal(t, filepath.Join(repo, ".git"), p.GitDir())
	assert.Equal(t, filepath.Join(repo, ".git", "hooks"), p.HooksDir())
	assert.Equal(t, filepath.Join(repo, "hookup.toml"), p.RepoConfigPath())
}

func TestNewFromSubdirectory(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
	nested := filepath.Join(repo, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	p, err := paths.New(nested)
	require.NoError(t, err)

	assert.True(t, p.InRepo())
	assert.Equal(t, repo, p.RepoRoot())
}

func TestNewOutsideRepo(t *testing.T) {
	dir := t.TempDir()

	p, err := paths.New(dir)
	require.NoError(t, err)

	assert.False(t, p.InRepo())
	assert.Empty(t, p.RepoRoot())
	assert.Empty(t, p.HooksDir())
	assert.Empty(t, p.RepoConfigPath())
}

func TestNewResolvesGitFile(t *testing.T) {
	// Worktrees keep a .git file pointing at the real git dir
	base := t.TempDir()
	realGit := filepath.Join(base, "main", ".git", "worktrees", "wt")
	require.NoError(t, os.MkdirAll(realGit, 0755))

	worktree := filepath.Join(base, "wt")
	require.NoError(t, os.MkdirAll(worktree, 0755))
	gitFile := filepath.Join(worktree, ".git")
	require.NoError(t, os.WriteFile(gitFile, []byte("gitdir: "+realGit+"\n"), 0644))

	p, err := paths.New(worktree)
	require.NoError(t, err)

	assert.True(t, p.InRepo())
	assert.Equal(t, worktree, p.RepoRoot())
	assert.Equal(t, realGit, p.GitDir())
}

func TestConfigDirOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(paths.EnvConfigDir, override)

	assert.Equal(t, override, paths.ConfigDir())
	assert.Equal(t, filepath.Join(override, "hookup.toml"), paths.ConfigFilePath())
}

func TestDataDirOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(paths.EnvDataDir, override)

	assert.Equal(t, override, paths.DataDir())
}
