package user

import (
	"context"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/middleware"
)

// Recharge - пополняет баланс пользователя на amount жетонов
func (s *serv) Recharge(ctx context.Context, amount int) (int, error) {
	// Валидация суммы до любых изменений
	if amount <= 0 {
		return 0, apperr.ErrInvalidAmount
	}

	authUser, ok := middleware.AuthUserFromContext(ctx)
	if !ok {
		return 0, apperr.ErrMissingToken
	}

	var newBalance int

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Читаем с блокировкой, чтобы не потерять конкурентное изменение баланса
		u, err := s.userRepo.GetUserForUpdate(txCtx, authUser.UserID)
		if err != nil {
			return err
		}

		newBalance = u.Balance + amount
		return s.userRepo.UpdateBalance(txCtx, u.ID, newBalance)
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}
