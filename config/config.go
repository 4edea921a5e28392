// Package config holds the netflow settings shared by the CLI, the batch
// runner and the HTTP server. Values come from defaults, an optional config
// file and NETFLOW_* environment variables, in increasing priority.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netflow/network"
)

// EnvPrefix is prepended to environment overrides: solver.backend is read
// from NETFLOW_SOLVER_BACKEND.
const EnvPrefix = "NETFLOW"

// Config manages netflow configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Solver
	v.SetDefault("solver.backend", "auto")
	v.SetDefault("solver.duplicate_policy", "overwrite")
	v.SetDefault("solver.trace", false)
	v.SetDefault("solver.max_nodes", 1<<20)

	// Batch
	v.SetDefault("batch.workers", 1)
	v.SetDefault("batch.csv_path", "network_flow_results.csv")
	v.SetDefault("batch.verbose_limit", 3)

	// Report
	v.SetDefault("report.detail_node_limit", 30)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_body_bytes", 8<<20)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Getters for solver parameters
func (c *Config) BackendName() string { return c.v.GetString("solver.backend") }
func (c *Config) DuplicatePolicyName() string { return c.v.GetString("solver.duplicate_policy") }
func (c *Config) Trace() bool { return c.v.GetBool("solver.trace") }
func (c *Config) MaxNodes() int { return c.v.GetInt("solver.max_nodes") }

func (c *Config) Workers() int { return c.v.GetInt("batch.workers") }
func (c *Config) CSVPath() string { return c.v.GetString("batch.csv_path") }
func (c *Config) VerboseLimit() int { return c.v.GetInt("batch.verbose_limit") }

func (c *Config) DetailNodeLimit() int { return c.v.GetInt("report.detail_node_limit") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogFormat() string { return c.v.GetString("logging.format") }

func (c *Config) ServerAddr() string { return c.v.GetString("server.addr") }
func (c *Config) MaxBodyBytes() int64 { return c.v.GetInt64("server.max_body_bytes") }

// Backend parses solver.backend.
func (c *Config) Backend() (network.Backend, error) {
	return network.ParseBackend(c.BackendName())
}

// DuplicatePolicy parses solver.duplicate_policy.
func (c *Config) DuplicatePolicy() (network.DuplicatePolicy, error) {
	return network.ParseDuplicatePolicy(c.DuplicatePolicyName())
}

// CreateLogger creates a zerolog logger on stderr based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.NewLogger(os.Stderr)
}

// NewLogger is CreateLogger with an explicit destination. logging.format
// "json" writes raw JSON lines; anything else uses the console writer.
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	w := out
	if c.LogFormat() != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "netflow").Logger()
}
