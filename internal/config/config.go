package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/soloqlab/lol-insights/internal/stats"
)

// Config represents the application configuration.
type Config struct {
	// Source describes the match export to analyze.
	Source SourceConfig `toml:"source"`

	// Analysis holds the statistical pipeline parameters.
	Analysis AnalysisConfig `toml:"analysis"`

	// Charts holds chart output settings.
	Charts ChartsConfig `toml:"charts"`

	// API holds settings for the read-only stats server.
	API APIConfig `toml:"api"`

	// App contains general application settings.
	App AppConfig `toml:"app"`
}

// SourceConfig locates the match export file.
type SourceConfig struct {
	FilePath string `toml:"file_path"` // Path to the match history export
}

// AnalysisConfig contains pipeline parameters.
type AnalysisConfig struct {
	HistoryLength int `toml:"history_length"` // Number of prior games per lag-state
}

// ChartsConfig contains chart rendering settings.
type ChartsConfig struct {
	OutputDir   string `toml:"output_dir"`   // Directory for rendered HTML charts
	OpenBrowser bool   `toml:"open_browser"` // Open rendered charts in the browser
}

// APIConfig contains stats API server settings.
type APIConfig struct {
	Port int `toml:"port"` // Listen port for the serve command
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			FilePath: "",
		},
		Analysis: AnalysisConfig{
			HistoryLength: 1,
		},
		Charts: ChartsConfig{
			OutputDir:   "charts",
			OpenBrowser: false,
		},
		API: APIConfig{
			Port: 8080,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".lol-insights")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the default location. Returns the
// default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from the given path. Returns the
// default config if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to the default location.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Analysis.HistoryLength < 1 || c.Analysis.HistoryLength > stats.MaxHistoryLength {
		return fmt.Errorf("history length must be in [1, %d], got %d",
			stats.MaxHistoryLength, c.Analysis.HistoryLength)
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("invalid API port: %d", c.API.Port)
	}

	return nil
}
