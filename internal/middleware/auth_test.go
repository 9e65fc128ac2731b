package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jackpot_backend/internal/middleware"
	"jackpot_backend/internal/model"
	"jackpot_backend/internal/repository/session_repo"
	"jackpot_backend/pkg/token"
)

type tokenCfgStub struct{}

func (tokenCfgStub) SecretKey() []byte                   { return []byte("test-secret") }
func (tokenCfgStub) SessionTokenDuration() time.Duration { return time.Hour }

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"abc123", "abc123"},
		{"Bearer abc123", "abc123"},
		{"Token abc123", "abc123"},
		{"a b c", "a b c"},
	}

	for _, tc := range tests {
		if got := middleware.ExtractToken(tc.header); got != tc.want {
			t.Errorf("ExtractToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestAuthGate(t *testing.T) {
	sessions := session_repo.NewSessionRepository()

	user := &model.User{ID: 7, Username: "alice"}
	valid, err := token.GenerateSessionToken(user, tokenCfgStub{}.SecretKey(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	sessions.CreateSession(valid, model.Session{UserID: 7, Username: "alice", CreatedAt: time.Now()})

	// Signed correctly but never registered (e.g. issued before a restart).
	orphan, err := token.GenerateSessionToken(user, tokenCfgStub{}.SecretKey(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	expired, err := token.GenerateSessionToken(user, tokenCfgStub{}.SecretKey(), -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	sessions.CreateSession(expired, model.Session{UserID: 7, Username: "alice"})

	var seen middleware.AuthUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := middleware.AuthUserFromContext(r.Context())
		if !ok {
			t.Error("no auth user in context")
		}
		seen = u
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Auth(sessions, tokenCfgStub{})(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"unknown signed token", orphan, http.StatusUnauthorized},
		{"expired token", expired, http.StatusUnauthorized},
		{"valid bare token", valid, http.StatusOK},
		{"valid bearer token", "Bearer " + valid, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK {
				if seen.UserID != 7 || seen.Username != "alice" {
					t.Errorf("auth user = %+v", seen)
				}
			}
		})
	}
}
