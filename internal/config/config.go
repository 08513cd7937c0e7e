package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	jsonc "github.com/muhammadmuzzammil1998/jsonc"
	"github.com/sirupsen/logrus"

	"github.com/example/dormant/internal/core/staleness"
	"github.com/example/dormant/internal/schemas"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Environment overrides.
const (
	EnvDatabasePath      = "DORMANT_DB_PATH"
	EnvWindowMonths      = "DORMANT_WINDOW_MONTHS"
	EnvWindowDays        = "DORMANT_WINDOW_DAYS"
	EnvDeleteConcurrency = "DORMANT_DELETE_CONCURRENCY"
	EnvLogLevel          = "LOG_LEVEL"
)

// Window is the lookback window as written in the config file.
type Window struct {
	Months int `json:"months,omitempty"`
	Days   int `json:"days,omitempty"`
}

// UnmarshalJSON replaces the whole window so a file that sets only "days"
// does not inherit the default months.
func (w *Window) UnmarshalJSON(data []byte) error {
	type plain Window
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = Window(p)
	return nil
}

// Policy converts the window to the classifier policy.
func (w Window) Policy() staleness.Window {
	return staleness.Window{Months: w.Months, Days: w.Days}
}

// Config represents the dormant configuration.
type Config struct {
	Version           string   `json:"version"`
	DatabasePath      string   `json:"databasePath,omitempty"`
	Window            Window   `json:"window"`
	DeleteConcurrency int      `json:"deleteConcurrency,omitempty"`
	DeleteRetries     int      `json:"deleteRetries"`
	Protect           []string `json:"protect,omitempty"`
	LogLevel          string   `json:"logLevel,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:           CurrentVersion,
		Window:            Window{Months: 3},
		DeleteConcurrency: 4,
		DeleteRetries:     3,
		LogLevel:          "info",
	}
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, ".dormant", "config.jsonc")
}

// LoadConfig reads .dormant/config.jsonc from the specified directory,
// falling back to defaults when no file exists, then applies environment
// overrides and validates the result.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		clean := jsonc.ToJSON(data)
		if err := schemas.Validate(schemas.Config, clean); err != nil {
			return nil, fmt.Errorf("failed to validate config: %w", err)
		}
		if err := json.Unmarshal(clean, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.jsonc to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .dormant dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables. Setting either window variable
// replaces the whole window.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDatabasePath)); v != "" {
		c.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}

	months, monthsSet, err := envInt(EnvWindowMonths)
	if err != nil {
		return err
	}
	days, daysSet, err := envInt(EnvWindowDays)
	if err != nil {
		return err
	}
	if monthsSet || daysSet {
		c.Window = Window{Months: months, Days: days}
	}

	conc, set, err := envInt(EnvDeleteConcurrency)
	if err != nil {
		return err
	}
	if set {
		c.DeleteConcurrency = conc
	}
	return nil
}

func envInt(key string) (int, bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, true, nil
}

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if err := c.Window.Policy().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DeleteConcurrency < 1 {
		return fmt.Errorf("invalid config: deleteConcurrency must be at least 1 (got %d)", c.DeleteConcurrency)
	}
	if c.DeleteRetries < 0 {
		return fmt.Errorf("invalid config: deleteRetries must not be negative (got %d)", c.DeleteRetries)
	}
	return nil
}

// ResolveDatabasePath returns the configured database path or the default
// ~/.dormant/snapshot.db.
func (c *Config) ResolveDatabasePath() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	return DefaultDatabasePath()
}

// DefaultDatabasePath returns ~/.dormant/snapshot.db.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".dormant", "snapshot.db"), nil
}

// LoadEnv loads environment variables from .env files in dir.
func LoadEnv(dir string, logger *logrus.Logger) {
	files := []string{".env", ".env.local"}
	loaded := make([]string, 0, len(files))
	for _, name := range files {
		file := filepath.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("Failed to load %s", file)
			}
			continue
		}
		loaded = append(loaded, name)
	}
	if logger != nil && len(loaded) > 0 {
		logger.Debugf("Loaded env files: %s", strings.Join(loaded, ", "))
	}
}
