package game

import (
	"context"
	"errors"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/middleware"
	"jackpot_backend/internal/model"
	"log"
	"time"
)

// Play - одна игра против общего джекпота.
// Весь процесс идет в одной транзакции: баланс и джекпот либо
// изменяются вместе, либо откатываются вместе
func (s *serv) Play(ctx context.Context, betAmount int) (*model.PlayResult, error) {
	// Валидация ставки до любых изменений
	if betAmount <= 0 {
		return nil, apperr.ErrInvalidAmount
	}

	authUser, ok := middleware.AuthUserFromContext(ctx)
	if !ok {
		return nil, apperr.ErrMissingToken
	}

	var res *model.PlayResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Пользователь с блокировкой строки: конкурентные игры
		// одного пользователя выполняются по очереди
		user, err := s.userRepo.GetUserForUpdate(txCtx, authUser.UserID)
		if err != nil {
			return err
		}

		// 2. Проверка баланса до списания
		if user.Balance < betAmount {
			return apperr.ErrInsufficientBalance
		}

		// 3. Джекпот с блокировкой строки: конкурентные игры всех
		// пользователей сериализуются на единственной записи
		jackpot, err := s.stateRepo.GetJackpotForUpdate(txCtx, s.cfg.DefaultJackpot())
		if err != nil {
			return err
		}

		// 4. Списываем ставку безусловно, до розыгрыша
		balance := user.Balance - betAmount

		// 5. Розыгрыш исхода
		prize := 0
		if s.resolver.Resolve(betAmount) {
			// Выигрыш: приз равен джекпоту до сброса
			prize = jackpot
			balance += prize

			if err := s.historyRepo.Record(txCtx, user.Username, prize, time.Now()); err != nil {
				return err
			}
			jackpot = s.cfg.DefaultJackpot()
		} else {
			// Проигрыш: ставка уходит в джекпот
			jackpot += betAmount
		}

		// 6. Обе записи в рамках одной транзакции
		if err := s.stateRepo.SetJackpot(txCtx, jackpot); err != nil {
			return err
		}
		if err := s.userRepo.UpdateBalance(txCtx, user.ID, balance); err != nil {
			return err
		}

		result := model.ResultLose
		if prize > 0 {
			result = model.ResultWin
		}
		res = &model.PlayResult{
			Result:         result,
			Prize:          prize,
			CurrentJackpot: jackpot,
			Balance:        balance,
		}

		return nil
	})
	if err != nil {
		var appErr *apperr.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		// Сбой хранилища после начала последовательности изменений.
		// Транзакция откатилась целиком, но классифицируем отдельно
		log.Printf("play: transaction failed and was rolled back: %v", err)
		return nil, apperr.Wrap(err, apperr.KindPartialFailure, "play could not be completed")
	}

	s.broadcaster.Send(JackpotUpdate{
		Jackpot: res.CurrentJackpot,
		At:      time.Now(),
	})

	return res, nil
}
