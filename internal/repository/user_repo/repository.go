package user_repo

import (
	"context"
	"errors"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/model"
	"jackpot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colBalance      = "balance"

	uniqueViolationCode = "23505"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя, конфликт по username отдает как apperr
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colUsername, colPasswordHash, colBalance).
		Values(user.Username, user.Password, int64(user.Balance)).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperr.ErrUsernameTaken
		}
		return 0, err
	}

	return id, nil
}

// GetUserByUsername - возвращает модель пользователя (ID, Username, Password, Balance) по его имени
func (r *repo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colUsername: username}, false)
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id}, false)
}

// GetUserForUpdate - возвращает модель пользователя по ID с блокировкой строки (FOR UPDATE).
// Должен вызываться внутри транзакции
func (r *repo) GetUserForUpdate(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id}, true)
}

func (r *repo) getUser(ctx context.Context, where sq.Eq, forUpdate bool) (*model.User, error) {
	// Формируем запрос
	query := psql.Select(colID, colUsername, colPasswordHash, colBalance).
		From(table).
		Where(where)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Password, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}

	user.Balance = int(balance)
	return &user, nil
}

// UpdateBalance - обновляет баланс пользователя.
// Принимает ID пользователя и новую сумму баланса
func (r *repo) UpdateBalance(ctx context.Context, id int, amount int) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colBalance, int64(amount)).
		Where(sq.Eq{colID: id})

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
