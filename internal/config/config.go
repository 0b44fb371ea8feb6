// Package config resolves skyroute runtime settings.
//
// Precedence, lowest first: built-in defaults, a .env file, SKYROUTE_*
// environment variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Environment variable names.
const (
	EnvNetwork      = "SKYROUTE_NETWORK"
	EnvWorkers      = "SKYROUTE_WORKERS"
	EnvSelfPath     = "SKYROUTE_SELF_PATH"
	EnvLogFormat    = "SKYROUTE_LOG_FORMAT"
	EnvLogLevel     = "SKYROUTE_LOG_LEVEL"
	EnvLogVerbosity = "SKYROUTE_LOG_VERBOSITY"
	EnvMetrics      = "SKYROUTE_METRICS"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config controls CLI behavior.
type Config struct {
	Network      string
	Workers      int    `validate:"gte=0,lte=1024"`
	SelfPath     bool
	LogFormat    string `validate:"oneof=json console"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	LogVerbosity int    `validate:"gte=0,lte=10"`
	Metrics      bool
}

var validate = validator.New()

// Default returns the configuration seen with no .env, env or flags.
func Default() *Config {
	return &Config{
		LogFormat: "console",
		LogLevel:  "info",
	}
}

// FromEnv layers SKYROUTE_* variables over Default.
func FromEnv() *Config {
	d := Default()
	return &Config{
		Network:      envOrDefault(EnvNetwork, d.Network),
		Workers:      envOrDefaultInt(EnvWorkers, d.Workers),
		SelfPath:     envOrDefaultBool(EnvSelfPath, d.SelfPath),
		LogFormat:    strings.ToLower(envOrDefault(EnvLogFormat, d.LogFormat)),
		LogLevel:     strings.ToLower(envOrDefault(EnvLogLevel, d.LogLevel)),
		LogVerbosity: envOrDefaultInt(EnvLogVerbosity, d.LogVerbosity),
		Metrics:      envOrDefaultBool(EnvMetrics, d.Metrics),
	}
}

// BindFlags registers persistent flags on fs with cfg's current values as
// defaults, so parsed flags override env.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Network, "network", c.Network, "route network file (.yaml, .yml or .json)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "max concurrent searches for batch (0 = GOMAXPROCS)")
	fs.BoolVar(&c.SelfPath, "self-path", c.SelfPath, "treat source == target as a one-node route")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json|console")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug|info|warn|error")
	fs.IntVarP(&c.LogVerbosity, "verbosity", "v", c.LogVerbosity, "logr verbosity for engine traces")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "print Prometheus metrics to stderr after the command")
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadEnvFile walks up from dir looking for a .env file and loads the first
// one found. Variables already set in the process win. A missing file is
// not an error; the returned path is empty in that case.
func LoadEnvFile(dir string) (string, error) {
	for {
		envFile := filepath.Join(dir, ".env")
		if _, err := os.Stat(envFile); err == nil {
			return envFile, godotenv.Load(envFile)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return fallback
	}
}
