package auth

import (
	"jackpot_backend/internal/config"
	"jackpot_backend/internal/repository"
	"jackpot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokenCfg    config.TokenConfig
	gameCfg     config.GameConfig
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tokenCfg config.TokenConfig,
	gameCfg config.GameConfig,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokenCfg:    tokenCfg,
		gameCfg:     gameCfg,
	}
}
