package hooks

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/hookup/pkg/errors"
)

// starterConfig is a minimal working tool configuration.
// Kept to broadly useful hygiene checks so it is safe for any repo.
const starterConfig = `# See https://pre-commit.com for more hooks
repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.6.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
      - id: check-yaml
      - id: check-added-large-files
`

// StarterConfig returns the starter tool configuration content
func StarterConfig() string {
	return starterConfig
}

// WriteStarterConfig writes a starter config file at the repository
// root. An existing file is left alone unless force is set.
func WriteStarterConfig(repoRoot string, force bool) (string, error) {
	if existing, ok := FindConfig(repoRoot); ok && !force {
		return "", errors.Newf(errors.ErrFileExists, "%s already exists (use --force to overwrite)", existing)
	}

	path := filepath.Join(repoRoot, ConfigFileNames[0])
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return path, nil
}
