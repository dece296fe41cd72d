package middleware

import (
	"context"
	"net/http"

	"github.com/vangoframework/wms/internal/auth"
)

type contextKey string

// SessionContextKey is the context key for the session.
const SessionContextKey contextKey = "session"

// Session returns a middleware that loads the session into the request context.
// A missing, tampered or expired cookie leaves the request anonymous.
func Session(store *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session, err := store.Get(r); err == nil && session != nil {
				r = r.WithContext(WithSession(r.Context(), session))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *auth.SessionData) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) *auth.SessionData {
	session, ok := ctx.Value(SessionContextKey).(*auth.SessionData)
	if !ok {
		return nil
	}
	return session
}
