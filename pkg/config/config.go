package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	API    APIConfig
	Log    LogConfig
	Export ExportConfig
}

// APIConfig describes how to reach the admin-panel backend.
type APIConfig struct {
	BaseURL        string
	Prefix         string
	Token          string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig controls where rendered exports are written.
type ExportConfig struct {
	Dir       string
	ResultTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL:        strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Prefix:         v.GetString("API_PREFIX"),
		Token:          v.GetString("API_TOKEN"),
		RequestTimeout: parseDuration(v.GetString("REQUEST_TIMEOUT"), 15*time.Second),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Export = ExportConfig{
		Dir:       v.GetString("EXPORT_DIR"),
		ResultTTL: parseDuration(v.GetString("EXPORT_RESULT_TTL"), 24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("REQUEST_TIMEOUT", "15s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("EXPORT_DIR", "./exports")
	v.SetDefault("EXPORT_RESULT_TTL", "24h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
