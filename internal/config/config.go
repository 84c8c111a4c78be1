package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"ember/internal/parser"
)

// DefaultPath is read from the working directory when no path is given.
const DefaultPath = "ember.toml"

// Output formats for parsed trees
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings shared by the ember tools
type Config struct {
	Color    bool      `toml:"color"`
	Format   string    `toml:"format"`
	Timing   bool      `toml:"timing"`
	MaxDepth int       `toml:"max_depth"`
	Log      LogConfig `toml:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Color:    true,
		Format:   FormatText,
		MaxDepth: parser.DefaultMaxDepth,
		Log: LogConfig{
			Verbosity: 1,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value. A missing file at the default path is not an
// error; a missing file that was asked for explicitly is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	path = os.ExpandEnv(path)

	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := check(meta, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(data string) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := check(meta, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// check rejects keys the Config does not know, then validates values.
func check(meta toml.MetaData, cfg *Config) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q (want text, json or yaml)", c.Format)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}
