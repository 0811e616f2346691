// Package config loads runtime settings from config.yml with environment
// variable overrides. A missing config file is not fatal; defaults and the
// environment are enough to boot.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/healthnet/admin-api/pkg/messaging/redis"
)

type ServerConfig struct {
	Port           int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	Mode           string        `mapstructure:"mode" envconfig:"GIN_MODE"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes" envconfig:"SERVER_MAX_HEADER_BYTES"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret" envconfig:"JWT_SECRET"`
	Expiry time.Duration `mapstructure:"expiry" envconfig:"JWT_EXPIRY"`
}

type LatencyConfig struct {
	Enabled bool          `mapstructure:"enabled" envconfig:"LATENCY_ENABLED"`
	Min     time.Duration `mapstructure:"min" envconfig:"LATENCY_MIN"`
	Max     time.Duration `mapstructure:"max" envconfig:"LATENCY_MAX"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled" envconfig:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" envconfig:"RATE_LIMIT_RPS"`
	Burst             int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	AllowedMethods []string `mapstructure:"allowed_methods" envconfig:"ALLOWED_METHODS"`
	AllowedHeaders []string `mapstructure:"allowed_headers" envconfig:"ALLOWED_HEADERS"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool   `mapstructure:"prometheus_enabled" envconfig:"PROMETHEUS_ENABLED"`
	MetricsPath       string `mapstructure:"metrics_path" envconfig:"METRICS_PATH"`
}

type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled" envconfig:"REDIS_ENABLED"`
	URL          string        `mapstructure:"url" envconfig:"REDIS_URL"`
	MaxRetries   int           `mapstructure:"max_retries" envconfig:"REDIS_MAX_RETRIES"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" envconfig:"REDIS_RETRY_BACKOFF"`
	PoolSize     int           `mapstructure:"pool_size" envconfig:"REDIS_POOL_SIZE"`
	MinIdleConns int           `mapstructure:"min_idle_conns" envconfig:"REDIS_MIN_IDLE_CONNS"`
}

type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled" envconfig:"SMTP_ENABLED"`
	Host     string `mapstructure:"host" envconfig:"SMTP_HOST"`
	Port     int    `mapstructure:"port" envconfig:"SMTP_PORT"`
	Username string `mapstructure:"username" envconfig:"SMTP_USERNAME"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from" envconfig:"SMTP_FROM"`
}

type AuthConfig struct {
	ResetCodeTTL    time.Duration `mapstructure:"reset_code_ttl" envconfig:"RESET_CODE_TTL"`
	ExposeResetCode bool          `mapstructure:"expose_reset_code" envconfig:"EXPOSE_RESET_CODE"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Console bool   `mapstructure:"console" envconfig:"LOG_CONSOLE"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Latency    LatencyConfig    `mapstructure:"latency"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Security   SecurityConfig   `mapstructure:"security"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Email      EmailConfig      `mapstructure:"email"`
	Log        LogConfig        `mapstructure:"log"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			Mode:           "release",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   15 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		JWT:  JWTConfig{Expiry: 24 * time.Hour},
		Auth: AuthConfig{ResetCodeTTL: time.Hour},
		Latency: LatencyConfig{
			Enabled: true,
			Min:     300 * time.Millisecond,
			Max:     800 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 50, Burst: 100},
		Security: SecurityConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		},
		Monitoring: MonitoringConfig{PrometheusEnabled: true, MetricsPath: "/metrics"},
		Redis:      RedisConfig{URL: "redis://localhost:6379"},
		Log:        LogConfig{Level: "info", Console: true},
	}
}

// Load reads config.yml from the usual locations, then applies environment
// overrides on top.
func Load() (*Config, error) {
	cfg := defaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")
	viper.AddConfigPath("/app/config")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return cfg, nil
}

func (c *RedisConfig) ToBrokerConfig() redis.Config {
	return redis.Config{
		URL:          c.URL,
		MaxRetries:   c.MaxRetries,
		RetryBackoff: c.RetryBackoff,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
	}
}
