// pkg/pkgmgr/pkgmgr_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (fake PATH entries)
// PURPOSE: Test install argv construction, lookup, and detection order

package pkgmgr_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/hookup/pkg/errors"
	"github.com/arthur-debert/hookup/pkg/pkgmgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallArgv(t *testing.T) {
	tests := []struct {
		manager string
		want    []string
	}{
		{"brew", []string{"brew", "install", "pre-commit"}},
		{"apt", []string{"apt-get", "install", "-y", "pre-commit"}},
		{"dnf", []string{"dnf", "install", "-y", "pre-commit"}},
		{"pacman", []string{"pacman", "-S", "--noconfirm", "pre-commit"}},
		{"uv", []string{"uv", "tool", "install", "pre-commit"}},
		{"pip", []string{"pip", "install", "--user", "pre-commit"}},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			m, err := pkgmgr.Get(tt.manager)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.InstallArgv("pre-commit"))
		})
	}
}

func TestGetUnknownManager(t *testing.T) {
	_, err := pkgmgr.Get("zypper")
	require.Error(t, err)
	assert.Equal(t, errors.ErrManagerNotFound, errors.GetCode(err))
}

func TestDetectPriorityOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake PATH scripts are POSIX-only")
	}

	bin := t.TempDir()
	for _, name := range []string{"pacman", "apt-get"} {
		path := filepath.Join(bin, name)
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	}
	t.Setenv("PATH", bin)

	// apt precedes pacman in the registry, so it must win
	m, err := pkgmgr.Detect()
	require.NoError(t, err)
	assert.Equal(t, "apt", m.Name)
}

func TestDetectNoneAvailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := pkgmgr.Detect()
	require.Error(t, err)
	assert.Equal(t, errors.ErrManagerNotFound, errors.GetCode(err))
}

func TestSelect(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake PATH scripts are POSIX-only")
	}

	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, "brew"), []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", bin)

	m, err := pkgmgr.Select("")
	require.NoError(t, err)
	assert.Equal(t, "brew", m.Name)

	m, err = pkgmgr.Select("auto")
	require.NoError(t, err)
	assert.Equal(t, "brew", m.Name)

	m, err = pkgmgr.Select("pip")
	require.NoError(t, err)
	assert.Equal(t, "pip", m.Name)
}
