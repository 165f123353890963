package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// NavConfig sizes the in-memory store of mounted navigation bars.
type NavConfig struct {
	InstanceTTL     time.Duration
	CleanupInterval time.Duration
}

// Config is the process configuration read from the environment.
type Config struct {
	Port        string
	GinMode     string
	LogLevel    zapcore.Level
	SiteOwner   string
	VisitorSalt string
	Nav         NavConfig
}

// Load reads the environment. Values from a .env file are already in the
// environment when main imports godotenv/autoload.
func Load() (*Config, error) {
	level, err := zapcore.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}

	ttl, err := getDuration("NAV_INSTANCE_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	cleanup, err := getDuration("NAV_CLEANUP_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		GinMode:     getEnvOrDefault("GIN_MODE", gin.ReleaseMode),
		LogLevel:    level,
		SiteOwner:   getEnvOrDefault("SITE_OWNER", "Alonso Bobadilla"),
		VisitorSalt: os.Getenv("VISITOR_HASH_SALT"),
		Nav: NavConfig{
			InstanceTTL:     ttl,
			CleanupInterval: cleanup,
		},
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, errors.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}

	if cfg.VisitorSalt == "" {
		if cfg.VisitorSalt, err = randomSalt(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	if d <= 0 {
		return 0, errors.Errorf("%s: must be positive, got %s", key, raw)
	}
	return d, nil
}

// randomSalt keys visitor hashes for the life of the process.
func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate visitor salt")
	}
	return hex.EncodeToString(b), nil
}
