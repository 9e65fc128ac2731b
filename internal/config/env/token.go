package env

import (
	"fmt"
	"jackpot_backend/internal/config"
	"os"
	"time"
)

const (
	tokenSecretEnvName   = "SESSION_TOKEN_SECRET"
	tokenDurationEnvName = "SESSION_TOKEN_DURATION"
)

type tokenConfig struct {
	secretKey            string
	sessionTokenDuration time.Duration
}

func NewTokenConfig() (config.TokenConfig, error) {
	secretKey := os.Getenv(tokenSecretEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	duration := os.Getenv(tokenDurationEnvName)
	if len(duration) == 0 {
		return nil, fmt.Errorf("session token duration not found")
	}

	durationParsed, err := time.ParseDuration(duration)
	if err != nil {
		return nil, fmt.Errorf("invalid session token duration: %w", err)
	}

	return &tokenConfig{
		secretKey:            secretKey,
		sessionTokenDuration: durationParsed,
	}, nil
}

func (cfg *tokenConfig) SecretKey() []byte {
	return []byte(cfg.secretKey)
}

func (cfg *tokenConfig) SessionTokenDuration() time.Duration {
	return cfg.sessionTokenDuration
}
