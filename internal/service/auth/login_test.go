package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/middleware"
	"jackpot_backend/internal/model"
	"jackpot_backend/internal/repository/session_repo"
	"jackpot_backend/internal/service/auth"
	"jackpot_backend/pkg/pass"
	"jackpot_backend/pkg/token"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type gameCfgStub struct{}

func (gameCfgStub) BaseProbability() float64 { return 0.0001 }
func (gameCfgStub) BonusPerToken() float64   { return 0.001 }
func (gameCfgStub) BonusCap() float64        { return 0.05 }
func (gameCfgStub) MaxProbability() float64  { return 0.1 }
func (gameCfgStub) DefaultJackpot() int      { return 1000 }
func (gameCfgStub) StartingBalance() int     { return 100 }
func (gameCfgStub) HistoryLimit() int        { return 10 }

type tokenCfgStub struct{}

func (tokenCfgStub) SecretKey() []byte                  { return []byte("test-secret") }
func (tokenCfgStub) SessionTokenDuration() time.Duration { return time.Hour }

type userRepoFake struct {
	users map[string]*model.User
}

func (f *userRepoFake) CreateUser(_ context.Context, user *model.User) (int, error) {
	if _, ok := f.users[user.Username]; ok {
		return 0, apperr.ErrUsernameTaken
	}
	id := len(f.users) + 1
	u := *user
	u.ID = id
	f.users[user.Username] = &u
	return id, nil
}

func (f *userRepoFake) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *userRepoFake) GetUserByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (f *userRepoFake) GetUserForUpdate(ctx context.Context, id int) (*model.User, error) {
	return f.GetUserByID(ctx, id)
}

func (f *userRepoFake) UpdateBalance(_ context.Context, id int, amount int) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Balance = amount
			return nil
		}
	}
	return apperr.ErrUserNotFound
}

func TestLoginCreatesUserWithStartingBalance(t *testing.T) {
	users := &userRepoFake{users: map[string]*model.User{}}
	sessions := session_repo.NewSessionRepository()
	serv := auth.NewAuthService(txManagerStub{}, users, sessions, tokenCfgStub{}, gameCfgStub{})

	data, err := serv.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	created := users.users["alice"]
	if created == nil {
		t.Fatal("user was not created")
	}
	if created.Balance != 100 {
		t.Errorf("starting balance = %d, want 100", created.Balance)
	}
	if created.Password == "secret123" {
		t.Error("password stored in plain text")
	}

	// The token is usable immediately: signed and present in the registry.
	if _, err := token.VerifyToken(data.Token, tokenCfgStub{}.SecretKey()); err != nil {
		t.Errorf("fresh token does not verify: %v", err)
	}
	session, ok := sessions.GetSession(data.Token)
	if !ok {
		t.Fatal("session not registered")
	}
	if session.UserID != data.UserID || session.Username != "alice" {
		t.Errorf("session = %+v", session)
	}
}

func TestLoginExistingUser(t *testing.T) {
	hash, err := pass.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	users := &userRepoFake{users: map[string]*model.User{
		"alice": {ID: 1, Username: "alice", Password: hash, Balance: 250},
	}}
	sessions := session_repo.NewSessionRepository()
	serv := auth.NewAuthService(txManagerStub{}, users, sessions, tokenCfgStub{}, gameCfgStub{})

	data, err := serv.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if data.UserID != 1 || data.Username != "alice" {
		t.Errorf("auth data = %+v", data)
	}
	// Existing balance stays untouched by a repeated login.
	if users.users["alice"].Balance != 250 {
		t.Errorf("balance = %d, want 250", users.users["alice"].Balance)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := pass.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	users := &userRepoFake{users: map[string]*model.User{
		"alice": {ID: 1, Username: "alice", Password: hash, Balance: 100},
	}}
	serv := auth.NewAuthService(txManagerStub{}, users, session_repo.NewSessionRepository(), tokenCfgStub{}, gameCfgStub{})

	_, err = serv.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, apperr.ErrInvalidPassword) {
		t.Errorf("err = %v, want ErrInvalidPassword", err)
	}
}

func TestLoginMissingFields(t *testing.T) {
	serv := auth.NewAuthService(
		txManagerStub{},
		&userRepoFake{users: map[string]*model.User{}},
		session_repo.NewSessionRepository(),
		tokenCfgStub{},
		gameCfgStub{},
	)

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"alice", ""},
		{"", ""},
	} {
		_, err := serv.Login(context.Background(), tc.username, tc.password)
		if !errors.Is(err, apperr.ErrMissingCredentials) {
			t.Errorf("%q/%q: err = %v, want ErrMissingCredentials", tc.username, tc.password, err)
		}
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	users := &userRepoFake{users: map[string]*model.User{}}
	sessions := session_repo.NewSessionRepository()
	serv := auth.NewAuthService(txManagerStub{}, users, sessions, tokenCfgStub{}, gameCfgStub{})

	data, err := serv.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	ctx := middleware.WithAuthUser(context.Background(), middleware.AuthUser{
		UserID:   data.UserID,
		Username: data.Username,
		Token:    data.Token,
	})
	if err := serv.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := sessions.GetSession(data.Token); ok {
		t.Error("session survived logout")
	}

	// A second logout of the same token is not an error.
	if err := serv.Logout(ctx); err != nil {
		t.Errorf("repeated Logout: %v", err)
	}
}
