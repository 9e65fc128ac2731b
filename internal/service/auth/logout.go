package auth

import (
	"context"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/middleware"
)

// Logout - закрывает сессию по токену из контекста запроса.
// Повторный logout того же токена не ошибка
func (s *serv) Logout(ctx context.Context) error {
	user, ok := middleware.AuthUserFromContext(ctx)
	if !ok {
		return apperr.ErrMissingToken
	}

	s.sessionRepo.DeleteSession(user.Token)
	return nil
}
