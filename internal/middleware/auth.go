package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserID returns the authenticated user id injected by RequireAuth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// WithUserID returns a context carrying the given user id, as RequireAuth
// would produce for an authenticated request.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// TokenVerifier validates a session token and returns the identity it
// carries. Implemented by auth.VerifyToken; declared here so the
// middleware stays free of the auth package.
type TokenVerifier func(token string) (userID, email string, err error)

// RequireAuth validates the session cookie and injects the user id into
// the request context. It runs before any repository call: requests
// without a valid token never reach a handler.
func RequireAuth(cookieName string, verify TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				http.Error(w, `{"message":"Not authenticated"}`, http.StatusUnauthorized)
				return
			}

			userID, _, err := verify(cookie.Value)
			if err != nil || userID == "" {
				http.Error(w, `{"message":"Invalid or expired token"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
