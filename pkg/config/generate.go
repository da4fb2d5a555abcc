package config

import (
	"bytes"

	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/hookup/pkg/errors"
)

// genconfigHeader is prepended to generated configuration files
const genconfigHeader = `# hookup configuration
#
# Place this file at the root of a repository, or in the hookup
# XDG config directory for user-wide defaults. Every key is optional;
# the values below are the built-in defaults.

`

// GenerateTOML renders the default configuration as a commented TOML
// document, suitable for writing to hookup.toml
func GenerateTOML() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(genconfigHeader)

	enc := tomlv2.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(Default()); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode default configuration")
	}

	return buf.String(), nil
}
