package game

import (
	"context"
	"jackpot_backend/internal/model"
)

// History - последние выигрыши, новые в начале, не больше лимита из конфигурации
func (s *serv) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return s.historyRepo.Latest(ctx, s.cfg.HistoryLimit())
}
