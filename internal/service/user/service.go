package user

import (
	"jackpot_backend/internal/repository"
	"jackpot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
}

func NewUserService(txManager trm.Manager, userRepo repository.UserRepository) service.UserService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
	}
}
