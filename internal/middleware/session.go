// Package middleware provides the HTTP middleware of the service: request
// logging, gzip, session and visitor identity, and subnet filtering.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/service"
)

// ContextKey is a custom type used for keys in the context.
type ContextKey string

const (
	// UserIDKey holds the id of the logged in user.
	UserIDKey ContextKey = "userID"

	// VisitorIDKey holds the id a redirect is recorded under.
	VisitorIDKey ContextKey = "visitorID"
)

const (
	SessionCookie = "token"
	VisitorCookie = "visitor_id"
)

// VisitorExp is the lifetime of the anonymous visitor cookie.
const VisitorExp = time.Hour * 24 * 365

// InjectUserID adds the user ID to the request context.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// UserIDFromContext returns the logged in user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

// VisitorIDFromContext returns the visitor id set by WithVisitor.
func VisitorIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(VisitorIDKey).(string)
	return id
}

// SetSessionCookie stores a session token on the client.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(service.TokenExp),
		HttpOnly: true,
		Path:     "/",
	})
}

// ClearSessionCookie removes the session token from the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}

// WithSession resolves the session cookie into a user id. Missing, invalid
// and stale sessions leave the request anonymous.
func WithSession(auth service.AuthIface, users service.UserServiceIface, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseClaims(cookie)
			if err != nil {
				logger.Debug("rejected session token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if _, err := users.UserByID(r.Context(), claims.UserID); err != nil {
				logger.Debug("session refers to unknown user", zap.String("user", claims.UserID))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, InjectUserID(r, claims.UserID))
		})
	}
}

// RequireSession answers 401 to anonymous requests.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			http.Error(w, "login required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithVisitor sets the id a visit is recorded under: the user id for logged
// in callers, otherwise the visitor cookie, issuing one when missing.
func WithVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := UserIDFromContext(r.Context())
		if !ok {
			if c, err := r.Cookie(VisitorCookie); err == nil && c.Value != "" {
				visitorID = c.Value
			} else {
				visitorID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    visitorID,
					Expires:  time.Now().Add(VisitorExp),
					HttpOnly: true,
					Path:     "/",
				})
			}
		}

		ctx := context.WithValue(r.Context(), VisitorIDKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
