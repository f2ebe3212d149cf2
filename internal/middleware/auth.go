package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Juanelc4734k/checkout-service/pkg/utils"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	authorizationKey
)

const userIDHeader = "X-User-ID"

// Auth resolves the caller identity from the X-User-ID header. The
// gateway in front of the service fills the header in, so there is no
// token verification here.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			utils.WriteError(w, "missing user id", http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			utils.WriteError(w, "invalid user id", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		if auth := r.Header.Get("Authorization"); auth != "" {
			ctx = context.WithValue(ctx, authorizationKey, auth)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func AuthorizationFromContext(ctx context.Context) string {
	auth, _ := ctx.Value(authorizationKey).(string)
	return auth
}
