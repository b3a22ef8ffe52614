package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	HTTPPort int `yaml:"http_port"`
	GRPCPort int `yaml:"grpc_port"`

	CatalogPath string `yaml:"catalog_path"`
	Currency    string `yaml:"currency"`

	SessionSecret string        `yaml:"session_secret"`
	SessionCookie string        `yaml:"session_cookie"`
	MaxSessions   int           `yaml:"max_sessions"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
}

func Default() Config {
	return Config{
		AppEnv:        "dev",
		LogLevel:      "info",
		HTTPPort:      10000,
		GRPCPort:      0,
		CatalogPath:   "data/products.json",
		Currency:      "LAK",
		SessionSecret: "soundshopsecret",
		SessionCookie: "soundshop.sid",
		MaxSessions:   10000,
		SessionTTL:    24 * time.Hour,
	}
}

// Load layers defaults, the optional YAML file at path and the environment, in that order.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.HTTPPort = getEnvInt("PORT", c.HTTPPort)
	c.GRPCPort = getEnvInt("GRPC_PORT", c.GRPCPort)
	c.CatalogPath = getEnv("CATALOG_PATH", c.CatalogPath)
	c.Currency = getEnv("CURRENCY", c.Currency)
	c.SessionSecret = getEnv("SESSION_SECRET", c.SessionSecret)
	c.SessionCookie = getEnv("SESSION_COOKIE", c.SessionCookie)
	c.MaxSessions = getEnvInt("MAX_SESSIONS", c.MaxSessions)
	c.SessionTTL = getEnvDuration("SESSION_TTL", c.SessionTTL)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
