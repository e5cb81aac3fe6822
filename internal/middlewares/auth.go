package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// SessionReader checks the server-side session for a user.
type SessionReader interface {
	Get(ctx context.Context, userID uuid.UUID) (string, error)
}

type userIDKey struct{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user id. The second
// return value is false on requests that did not pass AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}

// AuthMiddleware validates the bearer token and requires a live
// server-side session holding that exact token, so logout (or a newer
// login) invalidates older tokens before their exp. The authenticated
// user id is injected into the request context.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			stored, err := sessions.Get(ctx, userID)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "user_id", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if stored == "" || stored != tokenString {
				logger.Log.Errorw("no live session for token", "user_id", userID)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}
