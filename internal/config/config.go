package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the binaries
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	DND5E   DND5EConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// Validate checks the fields the bot cannot start without
func (c DiscordConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

// RedisConfig holds Redis-specific configuration.
// URL wins over Addr when both are set.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether any Redis location was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL string
	// CacheTTL is how long fetched API documents are reused
	CacheTTL time.Duration
	// Import pulls spells and equipment from the API into the catalog at startup
	Import bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cacheTTL, err := getEnvAsDurationOrDefault("DND5E_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		DND5E: DND5EConfig{
			BaseURL:  getEnvOrDefault("DND5E_API_URL", "https://www.dnd5eapi.co/api/2014/"),
			CacheTTL: cacheTTL,
			Import:   getEnvAsBool("DND5E_IMPORT"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func getEnvAsBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
