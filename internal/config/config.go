// Package config loads the optional skewrev configuration file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/skewrev/pkg/errors"
)

const appName = "skewrev"

// Formats accepted by the render command.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Config is the decoded configuration file.
type Config struct {
	Log    Log    `toml:"log"`
	Solver Solver `toml:"solver"`
	Render Render `toml:"render"`
}

// Log configures diagnostics written to stderr.
type Log struct {
	Level string `toml:"level"` // debug, info, warn or error
}

// Solver configures resource limits for a query.
type Solver struct {
	MaxNodes   int `toml:"max_nodes"`    // 0 means unlimited
	MaxStackMB int `toml:"max_stack_mb"` // goroutine stack ceiling for deep searches
}

// Render configures the render command.
type Render struct {
	Format string `toml:"format"` // dot or svg
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Solver: Solver{MaxStackMB: 1024},
		Render: Render{Format: FormatSVG},
	}
}

// Load reads the configuration at path on top of [Default].
//
// If path is empty, the default location is used and a missing file is not
// an error. An explicit path must exist. Unknown keys and invalid values are
// reported as [errors.ErrCodeInvalidConfig].
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data on top of base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if c.Solver.MaxNodes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "solver.max_nodes must not be negative")
	}
	if c.Solver.MaxStackMB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "solver.max_stack_mb must not be negative")
	}
	switch c.Render.Format {
	case FormatDOT, FormatSVG:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "render.format %q is not one of dot, svg", c.Render.Format)
	}
	return nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/skewrev/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
