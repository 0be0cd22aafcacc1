package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"mlb-inning-times/internal/constants"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const (
	EnvPrefix     = "INNINGS_"
	ConfigFileEnv = "INNINGS_CONFIG"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	ServerPort      string        `koanf:"server_port"`
	DBPath          string        `koanf:"db_path"`
	LogLevel        string        `koanf:"log_level"`
	StatsAPIBaseURL string        `koanf:"stats_api_base_url"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	StoreTTL        time.Duration `koanf:"store_ttl"`
	ExportTTL       time.Duration `koanf:"export_ttl"`
}

func Default() *Config {
	return &Config{
		ServerPort:      "8080",
		DBPath:          "innings.db",
		LogLevel:        "info",
		StatsAPIBaseURL: constants.StatsAPIBaseURL,
		CacheTTL:        constants.GameCacheTTL,
		StoreTTL:        constants.GameStoreTTL,
		ExportTTL:       constants.ExportTTL,
	}
}

// Load layers defaults, an optional YAML file named by INNINGS_CONFIG and
// INNINGS_* environment variables, in that order. A .env file in the working
// directory is folded into the environment first.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	// INNINGS_CONFIG itself is not a setting
	k.Delete("config")

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("stats_api_base_url", cfg.StatsAPIBaseURL).
		Dur("cache_ttl", cfg.CacheTTL).
		Dur("store_ttl", cfg.StoreTTL).
		Dur("export_ttl", cfg.ExportTTL).
		Msg("configuration loaded")

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("%w: server_port must not be empty", ErrInvalidConfig)
	}
	if c.StatsAPIBaseURL == "" {
		return fmt.Errorf("%w: stats_api_base_url must not be empty", ErrInvalidConfig)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	}
	if c.CacheTTL < 0 || c.StoreTTL < 0 || c.ExportTTL < 0 {
		return fmt.Errorf("%w: ttl values must not be negative", ErrInvalidConfig)
	}
	return nil
}

var Module = fx.Provide(Load)
