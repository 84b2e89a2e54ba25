package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxCapacity is the largest room the game supports
	MaxCapacity = 5

	// MinPlayers is the smallest game that can be dealt
	MinPlayers = 3
)

// Config holds process settings read from the environment
type Config struct {
	Env       string
	HTTPAddr  string
	CORSAllow []string

	RedisAddr     string // host:port
	RedisPassword string
	RedisDB       int

	// RoomCapacity is the number of ready players that starts a game
	RoomCapacity int
	MinPlayers   int

	// RandomSeed seeds role dealing and user ids; zero seeds from the clock
	RandomSeed int64

	// ArchiveTTL expires archived games; zero keeps them
	ArchiveTTL time.Duration
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("APP_ENV", "dev"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
	cfg.RedisDB = getEnvInt("REDIS_DB", 0)
	cfg.RoomCapacity = getEnvInt("ROOM_CAPACITY", MaxCapacity)
	cfg.MinPlayers = getEnvInt("MIN_PLAYERS", MinPlayers)
	cfg.CORSAllow = splitCSV(getEnv("CORS_ALLOW", "*"))

	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
		}
		cfg.RandomSeed = seed
	}

	if v := os.Getenv("ARCHIVE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ARCHIVE_TTL: %w", err)
		}
		cfg.ArchiveTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the game size settings
func (c *Config) Validate() error {
	if c.MinPlayers < MinPlayers {
		return fmt.Errorf("MIN_PLAYERS must be at least %d", MinPlayers)
	}

	if c.RoomCapacity < c.MinPlayers || c.RoomCapacity > MaxCapacity {
		return fmt.Errorf("ROOM_CAPACITY must be between %d and %d", c.MinPlayers, MaxCapacity)
	}

	if c.ArchiveTTL < 0 {
		return errors.New("ARCHIVE_TTL cannot be negative")
	}

	return nil
}

// getEnv returns the env var or a default
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses an int env var with a fallback
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return def
}

// splitCSV trims and filters a comma-separated list
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
