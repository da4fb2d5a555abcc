// Package config loads hookup's configuration.
//
// Configuration is merged from four layers, later layers winning:
// built-in defaults, the user-level hookup.toml (XDG config dir), the
// repository-level hookup.toml, and finally HOOKUP_* environment
// variables (e.g. HOOKUP_TOOL_NAME overrides tool.name).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hookup/pkg/errors"
	"github.com/arthur-debert/hookup/pkg/hooks"
	"github.com/arthur-debert/hookup/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "HOOKUP_"

// Config is the fully merged hookup configuration
type Config struct {
	Tool    ToolConfig    `koanf:"tool" toml:"tool"`
	Install InstallConfig `koanf:"install" toml:"install"`
}

// ToolConfig identifies the hook-management tool
type ToolConfig struct {
	// Name is the executable probed on PATH
	Name string `koanf:"name" toml:"name"`

	// Package is the name handed to the package manager
	Package string `koanf:"package" toml:"package"`
}

// InstallConfig controls the installation and registration steps
type InstallConfig struct {
	// Manager selects a package manager by name; "" or "auto" means
	// pick the first one available on PATH
	Manager string `koanf:"manager" toml:"manager"`

	// HookTypes are forwarded as --hook-type flags on registration
	HookTypes []string `koanf:"hook_types" toml:"hook_types"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Tool: ToolConfig{
			Name:    hooks.DefaultTool,
			Package: hooks.DefaultTool,
		},
		Install: InstallConfig{
			Manager:   "",
			HookTypes: []string{hooks.HookPreCommit},
		},
	}
}

// defaultMap mirrors Default() for the koanf confmap provider
func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"tool.name":          d.Tool.Name,
		"tool.package":       d.Tool.Package,
		"install.manager":    d.Install.Manager,
		"install.hook_types": d.Install.HookTypes,
	}
}

// Load merges all configuration layers for a repository rooted at
// repoRoot (may be empty when outside a repository)
func Load(repoRoot string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User-level config
	if err := loadFileIfExists(k, paths.ConfigFilePath()); err != nil {
		return nil, err
	}

	// 3. Repository-level config
	if repoRoot != "" {
		if err := loadFileIfExists(k, filepath.Join(repoRoot, paths.ConfigFileName)); err != nil {
			return nil, err
		}
	}

	// 4. Environment variables: HOOKUP_TOOL_NAME -> tool.name
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the merged configuration for usability
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tool.Name) == "" {
		return errors.New(errors.ErrConfigValid, "tool.name must not be empty")
	}
	if strings.TrimSpace(c.Tool.Package) == "" {
		return errors.New(errors.ErrConfigValid, "tool.package must not be empty")
	}
	if len(c.Install.HookTypes) == 0 {
		return errors.New(errors.ErrConfigValid, "install.hook_types must name at least one hook type")
	}
	return nil
}

// loadFileIfExists merges a TOML config file when present
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}
