package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/g4market/internal/session"
	"github.com/GlebRadaev/g4market/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const (
	UserIDKey    ContextKey = "userID"
	UsernameKey  ContextKey = "username"
	SessionIDKey ContextKey = "sessionID"
)

type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*session.Session, error)
}

// LoadSession attaches the identity of a valid session cookie to the request
// context. Requests without a valid session pass through anonymous.
func LoadSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := resolver.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					zap.L().Error("can't resolve session", zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, sess.UserID)
			ctx = context.WithValue(ctx, UsernameKey, sess.Username)
			ctx = context.WithValue(ctx, SessionIDKey, sess.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that LoadSession left anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(UserIDKey).(int); !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Identity reports the authenticated user of ctx, if any.
func Identity(ctx context.Context) (userID int, username string, ok bool) {
	userID, ok = ctx.Value(UserIDKey).(int)
	if !ok {
		return 0, "", false
	}
	username, _ = ctx.Value(UsernameKey).(string)
	return userID, username, true
}
