// Package config defines the pitchmetrics configuration and its defaults.
package config

import (
	"os"
	"path/filepath"
)

// Source names one match sheet to import: the match identifier and the path
// to its CSV export.
type Source struct {
	Match string `koanf:"match"`
	Path  string `koanf:"path"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// DBPath is the SQLite event log location.
	DBPath string `koanf:"db_path"`

	// Delimiter is the CSV field separator. Only the first rune is used.
	Delimiter string `koanf:"delimiter"`

	// TopN is the default leaderboard length.
	TopN int `koanf:"top_n"`

	// MetricsFile, when set, receives a Prometheus text snapshot after each command.
	MetricsFile string `koanf:"metrics_file"`

	// Sources lists the match sheets imported by "import --all".
	Sources []Source `koanf:"sources"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		DBPath:    filepath.Join(userHome(), ".pitchmetrics", "events.db"),
		Delimiter: ";",
		TopN:      5,
	}
}

// DelimiterRune returns the configured separator as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ';'
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
