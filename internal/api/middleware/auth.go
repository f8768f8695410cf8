package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

// userIDKey ключ контекста с ID администратора
type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок с ID администратора, проставляется gateway-ем
const HeaderUserID = "X-User-ID"

// Auth middleware для защищенных (админских) маршрутов
// Проверяет наличие заголовка X-User-ID и кладет его значение в контекст.
// Сама авторизация выполняется на уровне gateway
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID администратора из контекста запроса
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
