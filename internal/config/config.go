// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultRoot        = "~/.king"
	DefaultDataFile    = "tasks.yaml"
	DefaultHistoryFile = "history"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultColor       = ColorAuto
	ConfigFileName     = "config.toml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the full configuration for king.
type Config struct {
	// Root is the directory relative paths below are resolved against.
	Root        string `toml:"root"`
	DataFile    string `toml:"data_file"`
	HistoryFile string `toml:"history_file"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`

	Boxed bool   `toml:"boxed"`
	Color string `toml:"color"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `toml:"-"`
}

// Overrides carries values set on the command line. Empty strings and nil
// pointers leave the loaded value alone.
type Overrides struct {
	Root       string
	ConfigFile string
	DataFile   string
	LogLevel   string
	LogFormat  string
	Color      string
	Boxed      *bool
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. Config file (explicit path, or <root>/config.toml when present)
// 3. Environment variables
// 4. Command-line overrides
func Load(o Overrides) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	root := firstNonEmpty(o.Root, os.Getenv("KING_ROOT"), cfg.Root)
	cfg.Root = root

	path := firstNonEmpty(o.ConfigFile, os.Getenv("KING_CONFIG"))
	if path != "" {
		if err := loadConfigFile(cfg, expandHome(path)); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if p := filepath.Join(expandHome(root), ConfigFileName); fileExists(p) {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", p, err)
		}
	}

	loadFromEnv(cfg)
	applyOverrides(cfg, o)

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Root = DefaultRoot
	cfg.DataFile = DefaultDataFile
	cfg.HistoryFile = DefaultHistoryFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.Color = DefaultColor
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	cfg.ConfigFile = path
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("KING_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("KING_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("KING_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KING_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("KING_COLOR"); v != "" {
		cfg.Color = v
	}
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.Root != "" {
		cfg.Root = o.Root
	}
	if o.DataFile != "" {
		cfg.DataFile = o.DataFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.LogFormat = o.LogFormat
	}
	if o.Color != "" {
		cfg.Color = o.Color
	}
	if o.Boxed != nil {
		cfg.Boxed = *o.Boxed
	}
}

func finalizeConfig(cfg *Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (use debug|info|warn|error)", ErrInvalid, cfg.LogLevel)
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (use text|json)", ErrInvalid, cfg.LogFormat)
	}
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (use auto|always|never)", ErrInvalid, cfg.Color)
	}
	if strings.TrimSpace(cfg.DataFile) == "" {
		return fmt.Errorf("%w: data_file is required", ErrInvalid)
	}

	cfg.Root = expandHome(strings.TrimSpace(cfg.Root))
	cfg.DataFile = cfg.resolve(cfg.DataFile)
	if strings.TrimSpace(cfg.HistoryFile) != "" {
		cfg.HistoryFile = cfg.resolve(cfg.HistoryFile)
	}
	if strings.TrimSpace(cfg.LogFile) != "" {
		cfg.LogFile = cfg.resolve(cfg.LogFile)
	}
	return nil
}

// resolve expands ~ and anchors relative paths at Root.
func (c *Config) resolve(path string) string {
	path = expandHome(strings.TrimSpace(path))
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Root, path)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
