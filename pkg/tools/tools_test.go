// pkg/tools/tools_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (fake PATH entries)
// PURPOSE: Test PATH probing and version parsing

package tools_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/hookup/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeTool drops an executable script named name into dir
func writeFakeTool(t *testing.T, dir, name, output string) {
	t.Helper()
	script := "#!/bin/sh\necho \"" + output + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0755))
}

func TestLookup(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake PATH scripts are POSIX-only")
	}

	bin := t.TempDir()
	writeFakeTool(t, bin, "sometool", "sometool 1.0.0")
	t.Setenv("PATH", bin)

	path, ok := tools.Lookup("sometool")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(bin, "sometool"), path)

	_, ok = tools.Lookup("definitely-not-here")
	assert.False(t, ok)
}

func TestCheckInstalledWithVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake PATH scripts are POSIX-only")
	}

	bin := t.TempDir()
	writeFakeTool(t, bin, "pre-commit", "pre-commit 3.7.1")
	t.Setenv("PATH", bin)

	result := tools.Check(context.Background(), "pre-commit")

	assert.True(t, result.Installed)
	assert.Equal(t, filepath.Join(bin, "pre-commit"), result.Path)
	assert.Equal(t, "3.7.1", result.Version)
}

func TestCheckAbsent(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	result := tools.Check(context.Background(), "pre-commit")

	assert.False(t, result.Installed)
	assert.Empty(t, result.Path)
	assert.Empty(t, result.Version)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "pre-commit 3.7.1", "3.7.1"},
		{"v_prefix", "lefthook v1.6.10", "1.6.10"},
		{"two_part", "tool 2.4", "2.4"},
		{"multiline", "pre-commit 3.7.1\nextra noise", "3.7.1"},
		{"no_version", "no digits here", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tools.ParseVersion(tt.in))
		})
	}
}
