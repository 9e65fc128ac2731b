package game_state_repo

import (
	"context"
	"jackpot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table             = "game_state"
	colID             = "id"
	colCurrentJackpot = "current_jackpot"

	// В таблице живет ровно одна запись
	singletonID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameStateRepository(dbc *pgxpool.Pool) repository.GameStateRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetJackpot - возвращает текущий джекпот без блокировки
func (r *repo) GetJackpot(ctx context.Context, initial int) (int, error) {
	return r.getJackpot(ctx, initial, false)
}

// GetJackpotForUpdate - возвращает текущий джекпот с блокировкой строки (FOR UPDATE).
// Пока транзакция не завершится, конкурентные игры ждут на этой блокировке
func (r *repo) GetJackpotForUpdate(ctx context.Context, initial int) (int, error) {
	return r.getJackpot(ctx, initial, true)
}

func (r *repo) getJackpot(ctx context.Context, initial int, forUpdate bool) (int, error) {
	// Ленивое создание единственной записи при первом обращении
	if err := r.ensureState(ctx, initial); err != nil {
		return 0, err
	}

	// Формируем запрос
	query := psql.Select(colCurrentJackpot).
		From(table).
		Where(sq.Eq{colID: singletonID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var jackpot int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&jackpot)
	if err != nil {
		return 0, err
	}

	return int(jackpot), nil
}

// SetJackpot - записывает новое значение джекпота
func (r *repo) SetJackpot(ctx context.Context, amount int) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colCurrentJackpot, int64(amount)).
		Where(sq.Eq{colID: singletonID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *repo) ensureState(ctx context.Context, initial int) error {
	query := psql.Insert(table).
		Columns(colID, colCurrentJackpot).
		Values(singletonID, int64(initial)).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
