package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	defaultTimezone                = "UTC"
	defaultSessionTTLHours         = 24 * 7
	defaultTelegramAuthMaxAgeHours = 24
	defaultLoginRateLimitPerMin    = 10
	defaultCatalogCacheSizeMB      = 32
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// activity report "today" is resolved in this zone
	Timezone string `toml:"timezone"`

	// auth
	AdminTelegramIDs            []int64  `toml:"admin_telegram_ids"`
	SessionTTLHours             int      `toml:"session_ttl_hours"`
	TelegramAuthMaxAgeHours     int      `toml:"telegram_auth_max_age_hours"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	// only behind a proxy that overwrites X-Real-Ip / X-Forwarded-For
	TrustProxyHeaders           bool     `toml:"trust_proxy_headers"`
	AllowedOrigins              []string `toml:"allowed_origins"`

	CatalogCacheSizeMB int `toml:"catalog_cache_size_mb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the config section for env,
// with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = defaultSessionTTLHours
	}
	if c.TelegramAuthMaxAgeHours <= 0 {
		c.TelegramAuthMaxAgeHours = defaultTelegramAuthMaxAgeHours
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = defaultLoginRateLimitPerMin
	}
	if c.CatalogCacheSizeMB <= 0 {
		c.CatalogCacheSizeMB = defaultCatalogCacheSizeMB
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone [%s]: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c *Config) TelegramAuthMaxAge() time.Duration {
	return time.Duration(c.TelegramAuthMaxAgeHours) * time.Hour
}

// Secrets are never kept in the config file.
type Secrets struct {
	TelegramBotToken  string
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	RedisPassword     string
	PostgresPassword  string
	SentryDSN         string
	HoneycombEnabled  bool
}

// LoadSecrets reads secrets from the environment. If envFile exists, it is
// loaded first; variables already set in the environment are not overridden.
func LoadSecrets(envFile string) (*Secrets, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file [%s]: %w", envFile, err)
		}
	}

	return &Secrets{
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		JWTSecret:         os.Getenv("GYMTRACK_JWT_SECRET"),
		AdminUsername:     os.Getenv("GYMTRACK_ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("GYMTRACK_ADMIN_PASSWORD_HASH"),
		RedisPassword:     os.Getenv("GYMTRACK_REDIS_PASS"),
		PostgresPassword:  os.Getenv("POSTGRES_PASSWORD"),
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		HoneycombEnabled:  os.Getenv("HONEYCOMB_ENABLED") == "true",
	}, nil
}

// Missing lists the names of the required secrets that are empty.
func (s *Secrets) Missing() []string {
	var missing []string
	if s.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if s.JWTSecret == "" {
		missing = append(missing, "GYMTRACK_JWT_SECRET")
	}
	if s.AdminUsername == "" || s.AdminPasswordHash == "" {
		missing = append(missing, "GYMTRACK_ADMIN_USERNAME/GYMTRACK_ADMIN_PASSWORD_HASH")
	}
	return missing
}
