package game

import (
	"context"
)

// Status - текущий джекпот. Запись создается лениво при первом обращении
func (s *serv) Status(ctx context.Context) (int, error) {
	return s.stateRepo.GetJackpot(ctx, s.cfg.DefaultJackpot())
}
