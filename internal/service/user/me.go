package user

import (
	"context"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/middleware"
	"jackpot_backend/internal/model"
)

// Me - профиль текущего пользователя.
// Пользователь мог исчезнуть после выдачи токена, тогда not found
func (s *serv) Me(ctx context.Context) (*model.User, error) {
	authUser, ok := middleware.AuthUserFromContext(ctx)
	if !ok {
		return nil, apperr.ErrMissingToken
	}

	return s.userRepo.GetUserByID(ctx, authUser.UserID)
}
