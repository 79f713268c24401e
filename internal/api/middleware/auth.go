package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avklm/STR-BookingService/internal/api/handlers"
)

const msgMissingGuestID = "требуется заголовок X-Guest-ID"

type contextKey string

const guestIDKey contextKey = "guestID"

// Auth middleware извлекает ID гостя из заголовка X-Guest-ID
// и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		guestIDStr := r.Header.Get("X-Guest-ID")
		if guestIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingGuestID)
			return
		}

		guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
		if err != nil || guestID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingGuestID)
			return
		}

		ctx := context.WithValue(r.Context(), guestIDKey, guestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetGuestID извлекает ID гостя из контекста запроса
func GetGuestID(ctx context.Context) (int64, bool) {
	guestID, ok := ctx.Value(guestIDKey).(int64)
	return guestID, ok
}
