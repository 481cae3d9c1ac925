package middlewares

import (
	"context"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/session"
)

// UserGetter loads a user by id for session resolution.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// WithUser stores the current user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the current user from the context. A nil
// result means the caller is anonymous; callers must treat nil as a valid
// state, never dereference it unguarded.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// CurrentUser returns a middleware that resolves the caller's identity
// from the session cookie on every request. A missing, invalid or expired
// session, or a user row that no longer exists, leaves the request
// anonymous rather than failing it.
func CurrentUser(sessions *session.Manager, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := sessions.TokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.UserID(ctx, token)
			if err != nil {
				logger.Log.Infow("invalid session token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Infow("session user not found", "user_id", userID)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
