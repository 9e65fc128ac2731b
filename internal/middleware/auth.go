package middleware

import (
	"context"
	"jackpot_backend/internal/apperr"
	"jackpot_backend/internal/config"
	"jackpot_backend/internal/repository"
	"jackpot_backend/pkg/resp"
	"jackpot_backend/pkg/token"
	"net/http"
	"strings"
)

type ctxKey int

const authUserKey ctxKey = iota

// AuthUser - данные аутентифицированного пользователя,
// складываются в контекст запроса для сервисов
type AuthUser struct {
	UserID   int
	Username string
	Token    string
}

// Auth - проверяет bearer токен запроса по реестру сессий.
// Сначала проверяем подпись токена, затем наличие живой сессии:
// после рестарта или logout подписанный токен уже недействителен
func Auth(sessions repository.SessionRepository, tokenCfg config.TokenConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractToken(r.Header.Get("Authorization"))
			if tokenStr == "" {
				resp.WriteError(w, apperr.ErrMissingToken)
				return
			}

			if _, err := token.VerifyToken(tokenStr, tokenCfg.SecretKey()); err != nil {
				resp.WriteError(w, apperr.ErrInvalidToken)
				return
			}

			session, ok := sessions.GetSession(tokenStr)
			if !ok {
				resp.WriteError(w, apperr.ErrInvalidToken)
				return
			}

			ctx := WithAuthUser(r.Context(), AuthUser{
				UserID:   session.UserID,
				Username: session.Username,
				Token:    tokenStr,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken - достает токен из заголовка Authorization.
// Принимаем как "Bearer <token>", так и просто "<token>"
func ExtractToken(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.Split(header, " ")
	if len(parts) == 2 {
		return parts[1]
	}

	return header
}

func WithAuthUser(ctx context.Context, user AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

func AuthUserFromContext(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(AuthUser)
	return user, ok
}
