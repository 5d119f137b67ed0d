// Package config loads service configuration from defaults, an optional
// config.yml and CAREHUB_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const EnvPrefix = "CAREHUB"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit" split_words:"true"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Outbox     OutboxConfig     `mapstructure:"outbox"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Mode            string        `mapstructure:"mode" validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" split_words:"true" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" split_words:"true" validate:"gt=0"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" split_words:"true" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" split_words:"true" validate:"gt=0"`
	MaxBodySize     int64         `mapstructure:"max_body_size" split_words:"true" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// SimulationConfig controls the artificial latency and vitals failure rate.
type SimulationConfig struct {
	MinDelay    time.Duration `mapstructure:"min_delay" split_words:"true" validate:"gte=0"`
	MaxDelay    time.Duration `mapstructure:"max_delay" split_words:"true" validate:"gtefield=MinDelay"`
	FailureRate float64       `mapstructure:"failure_rate" split_words:"true" validate:"gte=0,lte=1"`
	Seed        uint64        `mapstructure:"seed"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" split_words:"true" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" split_words:"true" validate:"min=1"`
}

// RedisConfig enables the Redis broker when URL is set. Without it outbox
// events are only logged.
type RedisConfig struct {
	URL           string        `mapstructure:"url" validate:"omitempty,url"`
	ChannelPrefix string        `mapstructure:"channel_prefix" split_words:"true" validate:"required"`
	MaxRetries    int           `mapstructure:"max_retries" split_words:"true"`
	RetryBackoff  time.Duration `mapstructure:"retry_backoff" split_words:"true"`
	PoolSize      int           `mapstructure:"pool_size" split_words:"true"`
	MinIdleConns  int           `mapstructure:"min_idle_conns" split_words:"true"`
}

type OutboxConfig struct {
	BatchSize       int           `mapstructure:"batch_size" split_words:"true" validate:"gt=0"`
	PollInterval    time.Duration `mapstructure:"poll_interval" split_words:"true" validate:"gt=0"`
	RetryAttempts   int           `mapstructure:"retry_attempts" split_words:"true" validate:"gt=0"`
	RetryDelay      time.Duration `mapstructure:"retry_delay" split_words:"true" validate:"gt=0"`
	Retention       time.Duration `mapstructure:"retention" validate:"gt=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" split_words:"true" validate:"gt=0"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.max_body_size", int64(1<<20))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("simulation.min_delay", 200*time.Millisecond)
	v.SetDefault("simulation.max_delay", 500*time.Millisecond)
	v.SetDefault("simulation.failure_rate", 0.05)
	v.SetDefault("simulation.seed", uint64(0))

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 50.0)
	v.SetDefault("rate_limit.burst", 100)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.channel_prefix", "carehub")
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.retry_backoff", 100*time.Millisecond)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)

	v.SetDefault("outbox.batch_size", 100)
	v.SetDefault("outbox.poll_interval", time.Second)
	v.SetDefault("outbox.retry_attempts", 3)
	v.SetDefault("outbox.retry_delay", 500*time.Millisecond)
	v.SetDefault("outbox.retention", 24*time.Hour)
	v.SetDefault("outbox.cleanup_interval", time.Hour)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "carehub")
}

// LoadConfig reads path when given, otherwise looks for config.yml in the
// working directory and ./config. A missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
