// Package config loads pivotstruct settings from config.json, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = "config.json"
	// DefaultEnvFile is loaded into the environment when present.
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes environment overrides, e.g. PIVOTSTRUCT_SHEET_NAME.
	EnvPrefix = "PIVOTSTRUCT"

	DefaultLogLevel = "info"
	DefaultWorkers  = 1
)

// Config holds all settings for a pivotstruct run.
type Config struct {
	// ExcelFile is the workbook used when none is given on the command line.
	ExcelFile string `mapstructure:"excel_file"`
	// SheetName is the sheet to read; the first sheet is used if it is missing.
	SheetName string `mapstructure:"sheet_name"`
	// PivotOrder lists the headings to extract, in output order.
	PivotOrder []string `mapstructure:"pivot_order"`
	// GapTolerance is the number of blank lines tolerated inside a table.
	GapTolerance int `mapstructure:"gap_tolerance"`
	// Workers is the number of headings processed concurrently.
	Workers int `mapstructure:"workers"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"sheet":         "sheet_name",
	"heading":       "pivot_order",
	"gap-tolerance": "gap_tolerance",
	"workers":       "workers",
	"log-level":     "log_level",
}

// Load reads configuration. An explicit path must exist; without one,
// DefaultConfigFile is used only if present. Flags that were set on the
// command line override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("excel_file", "")
	v.SetDefault("sheet_name", "")
	v.SetDefault("pivot_order", []string{})
	v.SetDefault("gap_tolerance", 0)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			file = DefaultConfigFile
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if fl := flags.Lookup(name); fl != nil {
				if err := v.BindPFlag(key, fl); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.PivotOrder = cleanHeadings(cfg.PivotOrder)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile adds the variables of a dotenv file to the environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.GapTolerance < 0 {
		return errors.New("gap_tolerance must not be negative")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
}

// cleanHeadings drops blank entries and surrounding whitespace.
func cleanHeadings(headings []string) []string {
	out := make([]string, 0, len(headings))
	for _, h := range headings {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}
