package auth

import (
	"context"
	"errors"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/model"
	"jackpot_backend/pkg/pass"
	"jackpot_backend/pkg/token"
	"time"
)

// Login - вход или регистрация одним вызовом.
// Если пользователя с таким именем нет, он создается со стартовым балансом
func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	if username == "" || password == "" {
		return nil, apperr.ErrMissingCredentials
	}

	var user *model.User

	// Поиск либо создание пользователя в одной транзакции.
	// Гонку двух первых логинов с одним именем ловит уникальный индекс
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Ищем пользователя по имени
		found, err := s.userRepo.GetUserByUsername(txCtx, username)
		if err == nil {
			// 2а. Пользователь есть - верификация пароля
			if !pass.VerifyPassword(found.Password, password) {
				return apperr.ErrInvalidPassword
			}
			user = found
			return nil
		}
		if !errors.Is(err, apperr.ErrUserNotFound) {
			return err
		}

		// 2б. Пользователя нет - хэшируем пароль и создаем
		passwordHash, err := pass.HashPassword(password)
		if err != nil {
			return err
		}

		user = &model.User{
			Username: username,
			Password: passwordHash,
			Balance:  s.gameCfg.StartingBalance(),
		}
		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Генерация подписанного токена сессии
	sessionToken, err := token.GenerateSessionToken(
		user,
		s.tokenCfg.SecretKey(),
		s.tokenCfg.SessionTokenDuration())
	if err != nil {
		return nil, err
	}

	// 4. Регистрируем сессию в реестре
	s.sessionRepo.CreateSession(sessionToken, model.Session{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
	})

	return &model.AuthData{
		UserID:   user.ID,
		Username: user.Username,
		Token:    sessionToken,
	}, nil
}
