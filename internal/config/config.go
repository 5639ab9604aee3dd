package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fadedpez/warsim/internal/logging"
	"github.com/fadedpez/warsim/internal/types"
)

const (
	DefaultGames       = 1
	DefaultMaxBattles  = int64(100000)
	DefaultLogLevel    = "info"
	DefaultEnvironment = "development"

	// ConfigPathEnv names a YAML profile when Load is given no path
	ConfigPathEnv = "WARSIM_CONFIG"
)

// Config holds all configuration for the application
type Config struct {
	// Simulation
	Games      int    `yaml:"games"`
	Workers    int    `yaml:"workers"`
	MaxBattles int64  `yaml:"max_battles"`
	Seed       *int64 `yaml:"seed"`
	Verbose    bool   `yaml:"verbose"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Environment
	Environment string `yaml:"environment"` // "development" or "production"

	// Warnings collects every malformed value that was ignored. Load cannot
	// log them itself because the logger depends on the loaded level.
	Warnings []string `yaml:"-"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Games:       DefaultGames,
		Workers:     runtime.NumCPU(),
		MaxBattles:  DefaultMaxBattles,
		Verbose:     true,
		LogLevel:    DefaultLogLevel,
		Environment: DefaultEnvironment,
	}
}

// Load builds the configuration from defaults, an optional YAML profile at
// path (or $WARSIM_CONFIG), and environment variables, in that order.
// Malformed values are recorded in Warnings and ignored.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, types.WrapError(types.ErrInvalidConfig, "error loading .env file", err)
		}
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		cfg.loadFile(path)
	}

	cfg.loadEnv()
	cfg.validate()

	return cfg, nil
}

// loadFile applies a YAML profile. An unreadable or unparseable file is
// recorded as a warning and leaves the configuration untouched.
func (c *Config) loadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.warnf("%s: ignoring unreadable file: %v", path, err)
		return
	}

	err = yaml.Unmarshal(data, c)
	if err == nil {
		return
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		// Decoding continues past type mismatches, leaving those fields as they were
		for _, msg := range typeErr.Errors {
			c.warnf("%s: %s", path, msg)
		}
		return
	}

	c.warnf("%s: ignoring unparseable file: %v", path, err)
}

func (c *Config) loadEnv() {
	if v, ok := c.envInt("WARSIM_GAMES"); ok {
		c.Games = int(v)
	}
	if v, ok := c.envInt("WARSIM_WORKERS"); ok {
		c.Workers = int(v)
	}
	if v, ok := c.envInt("WARSIM_MAX_BATTLES"); ok {
		c.MaxBattles = v
	}
	if v, ok := c.envInt("WARSIM_SEED"); ok {
		c.Seed = &v
	}
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", c.LogLevel)
	c.Environment = getEnvWithDefault("ENVIRONMENT", c.Environment)
}

// envInt parses an integer variable, recording a warning when it is set
// but malformed
func (c *Config) envInt(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.warnf("%s: ignoring malformed value %q", key, raw)
		return 0, false
	}
	return v, true
}

// validate replaces out of range values with their defaults
func (c *Config) validate() {
	if c.Games < 1 {
		c.warnf("games must be positive, got %d; using %d", c.Games, DefaultGames)
		c.Games = DefaultGames
	}
	if c.Workers < 1 {
		c.warnf("workers must be positive, got %d; using %d", c.Workers, runtime.NumCPU())
		c.Workers = runtime.NumCPU()
	}
	if c.MaxBattles < 1 {
		c.warnf("max battles must be positive, got %d; using %d", c.MaxBattles, DefaultMaxBattles)
		c.MaxBattles = DefaultMaxBattles
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		c.warnf("%v; using %s", err, DefaultLogLevel)
		c.LogLevel = DefaultLogLevel
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
}

func (c *Config) warnf(format string, v ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, v...))
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Level returns the parsed log level
func (c *Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Logger builds the process logger and reports any ignored values through it
func (c *Config) Logger() *logging.Logger {
	logger := logging.ForEnvironment(c.Environment, c.Level())
	for _, w := range c.Warnings {
		logger.Warn("config: %s", w)
	}
	return logger
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
