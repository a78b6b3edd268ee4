package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Events     EventsConfig     `yaml:"events"`
	Assessment AssessmentConfig `yaml:"assessment"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port              int `yaml:"port"`
	MetricsPort       int `yaml:"metrics_port"`
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// DatabaseConfig points at the plan catalog. An empty URL serves the
// built-in catalog.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// EventsConfig points at NATS. An empty URL disables events.
type EventsConfig struct {
	URL string `yaml:"url"`
}

type AssessmentConfig struct {
	AnalysisDelayMs int `yaml:"analysis_delay_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) AnalysisDelay() time.Duration {
	return time.Duration(c.Assessment.AnalysisDelayMs) * time.Millisecond
}

// LogLevel parses Logging.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              8700,
			MetricsPort:       8701,
			RequestsPerMinute: 120,
		},
		Assessment: AssessmentConfig{
			AnalysisDelayMs: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Assessment.AnalysisDelayMs < 0 {
		return nil, fmt.Errorf("analysis_delay_ms must not be negative, got %d", cfg.Assessment.AnalysisDelayMs)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DRAVITA_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("DRAVITA_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("DRAVITA_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("DRAVITA_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DRAVITA_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("DRAVITA_ANALYSIS_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Assessment.AnalysisDelayMs = n
		}
	}
	if v := os.Getenv("DRAVITA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DRAVITA_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
