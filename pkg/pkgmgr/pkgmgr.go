// Package pkgmgr models the system package managers hookup can delegate
// tool installation to. Each manager carries a fixed install argv,
// including its non-interactive flag, so unattended runs never prompt.
package pkgmgr

import (
	"github.com/arthur-debert/hookup/pkg/errors"
	"github.com/arthur-debert/hookup/pkg/tools"
)

// Manager describes one package manager
type Manager struct {
	// Name is the identifier used in config and on the command line
	Name string

	// Bin is the executable probed on PATH for detection
	Bin string

	// args are the fixed install arguments; the package name is appended
	args []string
}

// InstallArgv returns the full argv for installing pkg, executable first
func (m Manager) InstallArgv(pkg string) []string {
	argv := make([]string, 0, len(m.args)+2)
	argv = append(argv, m.Bin)
	argv = append(argv, m.args...)
	argv = append(argv, pkg)
	return argv
}

// Available reports whether the manager's executable resolves on PATH
func (m Manager) Available() bool {
	_, ok := tools.Lookup(m.Bin)
	return ok
}

// registry lists supported managers in auto-detection priority order.
// Order matters: on systems with several managers present the first
// available one wins.
var registry = []Manager{
	{Name: "brew", Bin: "brew", args: []string{"install"}},
	{Name: "apt", Bin: "apt-get", args: []string{"install", "-y"}},
	{Name: "dnf", Bin: "dnf", args: []string{"install", "-y"}},
	{Name: "pacman", Bin: "pacman", args: []string{"-S", "--noconfirm"}},
	{Name: "uv", Bin: "uv", args: []string{"tool", "install"}},
	{Name: "pip", Bin: "pip", args: []string{"install", "--user"}},
}

// Registry returns all supported managers in priority order
func Registry() []Manager {
	out := make([]Manager, len(registry))
	copy(out, registry)
	return out
}

// Get returns the manager with the given name
func Get(name string) (Manager, error) {
	for _, m := range registry {
		if m.Name == name {
			return m, nil
		}
	}
	return Manager{}, errors.Newf(errors.ErrManagerNotFound, "no package manager named %q", name)
}

// Detect returns the first manager whose executable is on PATH
func Detect() (Manager, error) {
	for _, m := range registry {
		if m.Available() {
			return m, nil
		}
	}
	return Manager{}, errors.New(errors.ErrManagerNotFound, "no supported package manager found on PATH")
}

// Select resolves the manager to use: an explicit name wins, otherwise
// the first available manager is picked. Empty and "auto" both mean
// auto-detection.
func Select(name string) (Manager, error) {
	if name == "" || name == "auto" {
		return Detect()
	}
	return Get(name)
}
