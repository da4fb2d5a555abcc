// cmd/hookup/root_test.go
// TEST TYPE: Integration Test (command surface)
// DEPENDENCIES: pkg/testutil (temp repo fixture)
// PURPOSE: Test command wiring through the cobra surface

package hookup_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hookup/cmd/hookup"
	"github.com/arthur-debert/hookup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns its combined output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := hookup.NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// chdir switches into dir for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestRootWithoutCommand(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, out, "hookup")
}

func TestGenconfig(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "genconfig")
	require.NoError(t, err)

	assert.Contains(t, out, "[tool]")
	assert.Contains(t, out, "[install]")
	assert.Contains(t, out, "pre-commit")
}

func TestSnippet(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	chdir(t, env.RepoRoot)

	out, err := execute(t, "snippet")
	require.NoError(t, err)

	assert.Contains(t, out, "pre-commit run --all-files")
	assert.Contains(t, out, "git commit --no-verify")
}

func TestUpDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	chdir(t, env.RepoRoot)
	t.Setenv("PATH", t.TempDir()) // neither tool nor managers resolvable

	out, err := execute(t, "up", "--dry-run", "--no-install")
	require.NoError(t, err)

	assert.Contains(t, out, "DRY RUN MODE")
	assert.Contains(t, out, "installation disabled")
}

func TestStatus(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	chdir(t, env.RepoRoot)
	t.Setenv("PATH", t.TempDir())

	out, err := execute(t, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "pre-commit not found on PATH")
	assert.Contains(t, out, "repository:")
}

func TestInitCreatesConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	chdir(t, env.RepoRoot)

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	_, err = os.Stat(filepath.Join(env.RepoRoot, ".pre-commit-config.yaml"))
	require.NoError(t, err)

	// Refuses to overwrite without --force
	_, err = execute(t, "init")
	require.Error(t, err)
}

func TestInitOutsideRepo(t *testing.T) {
	env := testutil.NewBareEnvironment(t)
	chdir(t, env.RepoRoot)

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git repository")
}

func TestTopicsListing(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "topics")
	require.NoError(t, err)

	assert.Contains(t, out, "managers")
	assert.Contains(t, out, "hook-types")
	assert.Contains(t, out, "config")
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hookup version")
}
