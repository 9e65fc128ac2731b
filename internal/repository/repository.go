package repository

import (
	"context"
	"jackpot_backend/internal/model"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetUserForUpdate - читает пользователя c блокировкой строки,
	// сериализует изменение баланса между конкурентными играми
	GetUserForUpdate(ctx context.Context, id int) (*model.User, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

type GameStateRepository interface {
	// GetJackpot - текущий джекпот; единственная запись создается
	// лениво со значением initial при первом обращении
	GetJackpot(ctx context.Context, initial int) (int, error)

	// GetJackpotForUpdate - то же, но с блокировкой строки на время транзакции
	GetJackpotForUpdate(ctx context.Context, initial int) (int, error)
	SetJackpot(ctx context.Context, amount int) error
}

type HistoryRepository interface {
	Record(ctx context.Context, winnerName string, amount int, createdAt time.Time) error
	Latest(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

// SessionRepository - реестр сессий. Хранится только в памяти процесса,
// при рестарте все сессии теряются
type SessionRepository interface {
	CreateSession(token string, session model.Session)
	GetSession(token string) (model.Session, bool)
	DeleteSession(token string)
}
