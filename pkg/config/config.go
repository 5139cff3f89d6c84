// Package config loads engine configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the engine's runtime settings. Database settings live in
// pkg/database and load separately.
type Config struct {
	// HTTPPort is the listen port of the webhook server.
	HTTPPort string

	// RedisAddr, RedisPassword and RedisDB configure the shared store.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// WebhookTimeout bounds the total processing of one inbound webhook.
	WebhookTimeout time.Duration

	// StoreOpTimeout bounds each individual shared-store call.
	StoreOpTimeout time.Duration

	// WSWriteTimeout bounds one WebSocket send to a dashboard client.
	WSWriteTimeout time.Duration

	// EncryptionKey is the hex-encoded 32-byte key used to encrypt agent
	// SIP credentials at rest. Never logged.
	EncryptionKey string
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	webhookTimeout, err := parseDuration("WEBHOOK_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	storeOpTimeout, err := parseDuration("STORE_OP_TIMEOUT", time.Second)
	if err != nil {
		return nil, err
	}
	wsWriteTimeout, err := parseDuration("WS_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		WebhookTimeout: webhookTimeout,
		StoreOpTimeout: storeOpTimeout,
		WSWriteTimeout: wsWriteTimeout,
		EncryptionKey:  os.Getenv("CREDENTIAL_ENCRYPTION_KEY"),
	}, nil
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
