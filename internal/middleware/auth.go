package middleware

import (
	"context"
	"net/http"

	"github.com/brainbin-app/brainbin-api/internal/auth"
	"github.com/brainbin-app/brainbin-api/internal/handler/respond"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

type contextKey struct{}

var userIDKey = contextKey{}

const notAuthorizedMessage = "Not authorized. Login again"

// RequireSession gates a route behind a valid session cookie. On success the
// resolved user id is attached to the request context; otherwise the request
// is rejected with a 401 failure payload.
func RequireSession(jwtAuth auth.JWTAuthenticator, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				respond.Failure(w, http.StatusUnauthorized, notAuthorizedMessage)
				return
			}

			claims, err := jwtAuth.ValidateSessionToken(cookie.Value, secret)
			if err != nil || claims.Subject == "" {
				respond.Failure(w, http.StatusUnauthorized, notAuthorizedMessage)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the session user id attached by RequireSession, or "" if
// the request was not gated.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
