package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	BaseProbability() float64
	BonusPerToken() float64
	BonusCap() float64
	MaxProbability() float64
	DefaultJackpot() int
	StartingBalance() int
	HistoryLimit() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type TokenConfig interface {
	SecretKey() []byte
	SessionTokenDuration() time.Duration
}
