package middleware

import (
	"context"
	"net/http"

	"TodoKeeper/internal/auth"
)

// TokenHeader — заголовок, в котором клиент передаёт подписанный токен.
const TokenHeader = "x-auth-token"

type contextKey string

const userIDKey contextKey = "user_id"

// RequireAuth — строгий гейт для защищённых маршрутов: без токена — 401,
// с невалидным или истёкшим — 400. Хранилище не трогает; при успехе кладёт
// id пользователя в контекст запроса.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				http.Error(w, "No Available token", http.StatusUnauthorized)
				return
			}
			userID, err := auth.ParseUserID(token, secret)
			if err != nil {
				http.Error(w, "Invalid Token", http.StatusBadRequest)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает id пользователя, положенный RequireAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
