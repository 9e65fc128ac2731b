package game

import (
	"jackpot_backend/internal/config"
	"math/rand"
	"time"
)

// RandSource - источник равномерных значений в [0,1).
// В тестах подменяется фиксированным, чтобы детерминированно
// проверить обе ветки исхода
type RandSource interface {
	Float64() float64
}

// Resolver - считает вероятность выигрыша от ставки и разыгрывает исход
type Resolver struct {
	cfg config.GameConfig
	rnd RandSource
}

func NewResolver(cfg config.GameConfig, rnd RandSource) *Resolver {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{
		cfg: cfg,
		rnd: rnd,
	}
}

// WinProbability - вероятность выигрыша для ставки.
// База + линейный бонус за размер ставки, бонус ограничен сверху,
// итог ограничен общим потолком. Валидация ставки на вызывающей стороне
func (r *Resolver) WinProbability(betAmount int) float64 {
	bonus := float64(betAmount) * r.cfg.BonusPerToken()
	if bonus > r.cfg.BonusCap() {
		bonus = r.cfg.BonusCap()
	}

	probability := r.cfg.BaseProbability() + bonus
	if probability > r.cfg.MaxProbability() {
		probability = r.cfg.MaxProbability()
	}

	return probability
}

// Resolve - один равномерный розыгрыш: выигрыш, если выпало меньше вероятности
func (r *Resolver) Resolve(betAmount int) bool {
	return r.rnd.Float64() < r.WinProbability(betAmount)
}
