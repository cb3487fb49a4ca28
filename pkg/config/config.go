package config

import (
	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/formats"
)

// Backend names accepted in build.backend.
const (
	BackendHTML  = "html"
	BackendLaTeX = "latex"
)

// Config is the complete configblock configuration.
type Config struct {
	Build    Build             `koanf:"build" toml:"build"`
	Markdown Markdown          `koanf:"markdown" toml:"markdown"`
	Formats  map[string]string `koanf:"formats" toml:"formats,omitempty"`
}

// Build holds output settings.
type Build struct {
	Backend    string `koanf:"backend" toml:"backend"`
	Output     string `koanf:"output" toml:"output"`
	Standalone bool   `koanf:"standalone" toml:"standalone"`
}

// Markdown holds parser and renderer extensions.
type Markdown struct {
	Emoji     bool   `koanf:"emoji" toml:"emoji"`
	Highlight string `koanf:"highlight" toml:"highlight"`
}

// Validate checks values that the loader cannot type check.
func (c *Config) Validate() error {
	switch c.Build.Backend {
	case BackendHTML, BackendLaTeX:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown backend %q, want %q or %q",
			c.Build.Backend, BackendHTML, BackendLaTeX).
			WithDetail("backend", c.Build.Backend)
	}
	if c.Build.Output == "" {
		return errors.New(errors.ErrConfigValid, "build.output must not be empty")
	}
	if _, err := c.FormatTable(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid formats table")
	}
	return nil
}

// FormatTable returns the built-in format table with the configured extra
// formats merged in.
func (c *Config) FormatTable() (formats.Table, error) {
	return formats.Default().With(c.Formats)
}
