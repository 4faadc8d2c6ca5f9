// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Server  ServerConfig
	YouTube YouTubeConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// ServerConfig contains HTTP server configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	// APIKeys guards the /api/v1 surface. Empty list disables auth.
	APIKeys []string
}

// YouTubeConfig contains YouTube Data API client configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type YouTubeConfig struct {
	APIKey         string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	// KeywordDelay is the pause between per-keyword passes, a quota
	// courtesy rather than a correctness requirement.
	KeywordDelay time.Duration
}

// CacheConfig selects the gateway cache backend.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type CacheConfig struct {
	Backend       string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)
	viper.SetDefault("server.apikeys", []string{})

	// YouTube
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.requesttimeout", 10*time.Second)
	viper.SetDefault("youtube.cachettl", 1*time.Hour)
	viper.SetDefault("youtube.keyworddelay", 100*time.Millisecond)

	// Cache
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redisaddr", "localhost:6379")
	viper.SetDefault("cache.redispassword", "")
	viper.SetDefault("cache.redisdb", 0)

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
