package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const authorIDKey = contextKey("author_id")

// TokenParser verifies a bearer token and returns the author it was issued for.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(p TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok, msg := authenticate(p, r)
			if !ok {
				writeUnauthorized(w, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthorID(r.Context(), id)))
		})
	}
}

// OptionalAuth puts the author into the context when the request carries a valid bearer token.
// Requests without a bearer token (e.g. peers sending Basic credentials) pass as anonymous,
// malformed or invalid bearer tokens still get 401.
func OptionalAuth(p TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasBearerScheme(r.Header.Get("Authorization")) {
				next.ServeHTTP(w, r)
				return
			}

			id, ok, msg := authenticate(p, r)
			if !ok {
				writeUnauthorized(w, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthorID(r.Context(), id)))
		})
	}
}

// WithAuthorID returns a copy of ctx carrying the authenticated author.
func WithAuthorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, authorIDKey, id)
}

// AuthorIDFromContext returns the authenticated author or uuid.Nil for anonymous requests.
func AuthorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(authorIDKey).(uuid.UUID)
	return id, ok
}

func authenticate(p TokenParser, r *http.Request) (uuid.UUID, bool, string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return uuid.Nil, false, "missing Authorization header"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, false, "invalid Authorization header"
	}

	id, err := p.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return uuid.Nil, false, "invalid token"
	}

	return id, true, ""
}

func hasBearerScheme(header string) bool {
	scheme := strings.SplitN(strings.TrimSpace(header), " ", 2)[0]
	return strings.EqualFold(scheme, "Bearer")
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}
