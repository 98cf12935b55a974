// Package config loads the environment-variable configuration surface of
// spec §6: ROUTING_ORACLE_URL, ROUTING_TIMEOUT_SECONDS, DEFAULT_RULE_SET,
// plus the ambient DB_PATH/DATABASE_URL/REDIS_ADDR wiring SPEC_FULL.md adds
// for the layered cache and Postgres audit sink.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"hosplanner/internal/hosrules"
)

// Config is the fully validated, resolved configuration for one process.
type Config struct {
	Port             string
	RoutingOracleURL string
	RoutingAPIKey    string
	RoutingTimeout   time.Duration
	DefaultRuleSet   hosrules.RuleSet
	DefaultRuleTag   string

	CachePath string
	RedisAddr string

	DatabaseURL string
}

// Load reads and validates the process environment, loading a .env file
// first when present (mirroring the teacher's cmd/server bootstrap). It
// fails fast on an unregistered DEFAULT_RULE_SET or a non-numeric
// ROUTING_TIMEOUT_SECONDS, per spec §7's InvalidRequest/UnknownRuleSet
// classes applied at startup rather than per-request.
func Load() (*Config, error) {
	// A missing .env file is the common case in production; environment
	// variables set by the process supervisor still apply.
	_ = godotenv.Load()

	ruleTag := Get("DEFAULT_RULE_SET", hosrules.TagInterstate)
	ruleSet, err := hosrules.Get(ruleTag)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	timeoutSeconds, err := GetInt("ROUTING_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, fmt.Errorf("config: ROUTING_TIMEOUT_SECONDS: %w", err)
	}

	return &Config{
		Port:             Get("PORT", "8080"),
		RoutingOracleURL: Get("ROUTING_ORACLE_URL", "http://localhost:5000"),
		RoutingAPIKey:    Get("ROUTING_ORACLE_API_KEY", ""),
		RoutingTimeout:   time.Duration(timeoutSeconds) * time.Second,
		DefaultRuleSet:   ruleSet,
		DefaultRuleTag:   ruleTag,
		CachePath:        Get("DB_PATH", "data/route_cache.db"),
		RedisAddr:        Get("REDIS_ADDR", ""),
		DatabaseURL:      Get("DATABASE_URL", ""),
	}, nil
}

// Get returns the named environment variable, or fallback if unset or
// empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt parses the named environment variable as an integer, or returns
// fallback if unset.
func GetInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer: %w", key, raw, err)
	}
	return v, nil
}

// GetFloat parses the named environment variable as a float64, or returns
// fallback if unset.
func GetFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a number: %w", key, raw, err)
	}
	return v, nil
}
