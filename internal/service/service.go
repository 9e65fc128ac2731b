package service

import (
	"context"
	"jackpot_backend/internal/model"
)

type AuthService interface {
	// Login - вход или регистрация: неизвестный username создает
	// нового пользователя со стартовым балансом
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	Logout(ctx context.Context) error
}

type UserService interface {
	Me(ctx context.Context) (*model.User, error)
	Recharge(ctx context.Context, amount int) (newBalance int, err error)
}

type GameService interface {
	Play(ctx context.Context, betAmount int) (*model.PlayResult, error)
	Status(ctx context.Context) (jackpot int, err error)
	History(ctx context.Context) ([]model.HistoryEntry, error)
}
