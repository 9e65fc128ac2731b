package history_repo

import (
	"context"
	"jackpot_backend/internal/model"
	"jackpot_backend/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "history"
	colWinnerName = "winner_name"
	colAmount     = "amount"
	colCreatedAt  = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Record - добавляет запись о выигрыше. Записи никогда не изменяются и не удаляются
func (r *repo) Record(ctx context.Context, winnerName string, amount int, createdAt time.Time) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colWinnerName, colAmount, colCreatedAt).
		Values(winnerName, int64(amount), createdAt)

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

// Latest - возвращает последние выигрыши, новые в начале
func (r *repo) Latest(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	// Формируем запрос
	query := psql.Select(colWinnerName, colAmount, colCreatedAt).
		From(table).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.HistoryEntry, 0, limit)
	for rows.Next() {
		var entry model.HistoryEntry
		var amount int64
		if err := rows.Scan(&entry.WinnerName, &amount, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Amount = int(amount)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
