package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lojasmm/wabridge/internal/whatsapp"
)

type Config struct {
	WAPhoneNumberID string
	WAAccessToken   string
	WAVerifyToken   string
	WAAPIURL        string

	// InteractiveGroupSize is how many choice buttons go in one message.
	InteractiveGroupSize int

	LogLevel  string
	LogFormat string

	Port    string
	DataDir string
}

func Load() (*Config, error) {
	// .env is optional: env vars may already be set in production
	_ = godotenv.Load()

	cfg := &Config{
		WAPhoneNumberID: os.Getenv("WA_PHONE_NUMBER_ID"),
		WAAccessToken:   os.Getenv("WA_ACCESS_TOKEN"),
		WAVerifyToken:   os.Getenv("WA_VERIFY_TOKEN"),
		WAAPIURL:        os.Getenv("WA_API_URL"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
		Port:            os.Getenv("PORT"),
		DataDir:         os.Getenv("DATA_DIR"),
	}

	groupSize, err := parseIntEnv("WHATSAPP_INTERACTIVE_GROUP_SIZE", whatsapp.DefaultGroupSize)
	if err != nil {
		return nil, err
	}
	if groupSize < 1 || groupSize > whatsapp.MaxButtons {
		return nil, fmt.Errorf("WHATSAPP_INTERACTIVE_GROUP_SIZE must be between 1 and %d, got %d", whatsapp.MaxButtons, groupSize)
	}
	cfg.InteractiveGroupSize = groupSize

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	if cfg.WAAPIURL == "" {
		cfg.WAAPIURL = whatsapp.DefaultAPIURL
	}

	if cfg.WAVerifyToken == "" {
		token, err := randomHex(16)
		if err != nil {
			return nil, fmt.Errorf("generating verify token: %w", err)
		}
		cfg.WAVerifyToken = token
	}

	for _, req := range []struct {
		name, val string
	}{
		{"WA_PHONE_NUMBER_ID", cfg.WAPhoneNumberID},
		{"WA_ACCESS_TOKEN", cfg.WAAccessToken},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("required env var %s is not set", req.name)
		}
	}

	return cfg, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
