package game

import (
	"jackpot_backend/internal/config"
	"jackpot_backend/internal/repository"
	"jackpot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg         config.GameConfig
	userRepo    repository.UserRepository
	stateRepo   repository.GameStateRepository
	historyRepo repository.HistoryRepository
	txManager   trm.Manager
	resolver    *Resolver
	broadcaster *Broadcaster
}

func NewGameService(
	cfg config.GameConfig,
	userRepo repository.UserRepository,
	stateRepo repository.GameStateRepository,
	historyRepo repository.HistoryRepository,
	txManager trm.Manager,
	resolver *Resolver,
	broadcaster *Broadcaster,
) service.GameService {
	return &serv{
		cfg:         cfg,
		userRepo:    userRepo,
		stateRepo:   stateRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		resolver:    resolver,
		broadcaster: broadcaster,
	}
}
