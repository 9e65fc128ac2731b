package env

import (
	"fmt"
	"jackpot_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

type gameYAML struct {
	Game struct {
		BaseProbability float64 `yaml:"base_probability"`
		BonusPerToken   float64 `yaml:"bonus_per_token"`
		BonusCap        float64 `yaml:"bonus_cap"`
		MaxProbability  float64 `yaml:"max_probability"`
		DefaultJackpot  int     `yaml:"default_jackpot"`
		StartingBalance int     `yaml:"starting_balance"`
		HistoryLimit    int     `yaml:"history_limit"`
	} `yaml:"game"`
}

type gameConfig struct {
	baseProbability float64
	bonusPerToken   float64
	bonusCap        float64
	maxProbability  float64
	defaultJackpot  int
	startingBalance int
	historyLimit    int
}

// NewGameConfigFromYAML - читает игровую конфигурацию из yaml файла.
// Вероятности и лимиты обязаны быть положительными, иначе ошибка
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	g := raw.Game
	if g.BaseProbability <= 0 || g.BonusPerToken <= 0 || g.BonusCap <= 0 || g.MaxProbability <= 0 {
		return nil, fmt.Errorf("game config: probabilities must be positive")
	}
	if g.DefaultJackpot <= 0 || g.StartingBalance <= 0 || g.HistoryLimit <= 0 {
		return nil, fmt.Errorf("game config: jackpot, balance and history limit must be positive")
	}

	return &gameConfig{
		baseProbability: g.BaseProbability,
		bonusPerToken:   g.BonusPerToken,
		bonusCap:        g.BonusCap,
		maxProbability:  g.MaxProbability,
		defaultJackpot:  g.DefaultJackpot,
		startingBalance: g.StartingBalance,
		historyLimit:    g.HistoryLimit,
	}, nil
}

func (cfg *gameConfig) BaseProbability() float64 {
	return cfg.baseProbability
}

func (cfg *gameConfig) BonusPerToken() float64 {
	return cfg.bonusPerToken
}

func (cfg *gameConfig) BonusCap() float64 {
	return cfg.bonusCap
}

func (cfg *gameConfig) MaxProbability() float64 {
	return cfg.maxProbability
}

func (cfg *gameConfig) DefaultJackpot() int {
	return cfg.defaultJackpot
}

func (cfg *gameConfig) StartingBalance() int {
	return cfg.startingBalance
}

func (cfg *gameConfig) HistoryLimit() int {
	return cfg.historyLimit
}
