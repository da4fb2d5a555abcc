// pkg/status/status_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: pkg/testutil (temp repo fixture), fake PATH
// PURPOSE: Test environment report collection and rendering

package status_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/hookup/pkg/config"
	"github.com/arthur-debert/hookup/pkg/status"
	"github.com/arthur-debert/hookup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectEmptyEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("PATH", t.TempDir()) // nothing resolvable

	cfg := config.Default()
	r := status.Collect(context.Background(), &cfg, env.Paths)

	assert.False(t, r.Tool.Installed)
	assert.Nil(t, r.Manager)
	assert.True(t, r.InRepo)
	assert.Empty(t, r.ConfigPath)
	assert.Empty(t, r.RegisteredHooks)
}

func TestCollectWithConfigAndHooks(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("PATH", t.TempDir())

	env.WriteRepoFile(".pre-commit-config.yaml", `
repos:
  - repo: local
    hooks:
      - id: a
      - id: b
`)
	env.WriteRepoFile(".git/hooks/pre-commit",
		"#!/bin/sh\n# File generated by pre-commit\nexec pre-commit run\n")

	cfg := config.Default()
	r := status.Collect(context.Background(), &cfg, env.Paths)

	require.NotEmpty(t, r.ConfigPath)
	assert.Equal(t, 2, r.HookCount)
	assert.Equal(t, []string{"pre-commit"}, r.RegisteredHooks)
}

func TestCollectOutsideRepo(t *testing.T) {
	env := testutil.NewBareEnvironment(t)
	t.Setenv("PATH", t.TempDir())

	cfg := config.Default()
	r := status.Collect(context.Background(), &cfg, env.Paths)

	assert.False(t, r.InRepo)
	assert.Empty(t, r.RegisteredHooks)
}

func TestRender(t *testing.T) {
	r := &status.Report{
		ToolName: "pre-commit",
		InRepo:   false,
	}

	var buf bytes.Buffer
	status.Render(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "hookup environment")
	assert.Contains(t, out, "pre-commit not found on PATH")
	assert.Contains(t, out, "not inside a git repository")
}

func TestRenderHealthy(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	r := &status.Report{
		ToolName:        "pre-commit",
		InRepo:          true,
		RepoRoot:        env.RepoRoot,
		ConfigPath:      env.RepoRoot + "/.pre-commit-config.yaml",
		HookCount:       3,
		RegisteredHooks: []string{"pre-commit", "commit-msg"},
	}
	r.Tool.Installed = true
	r.Tool.Version = "3.7.1"
	r.Tool.Path = "/usr/bin/pre-commit"

	var buf bytes.Buffer
	status.Render(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "pre-commit 3.7.1")
	assert.Contains(t, out, "3 hooks")
	assert.Contains(t, out, "registered hook: pre-commit")
	assert.Contains(t, out, "registered hook: commit-msg")
}
