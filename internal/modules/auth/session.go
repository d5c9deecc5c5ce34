package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// Session is the authenticated caller's view, passed down from the
// transport layer to the business logic.
type Session struct {
	Username string
	Category string
}

type sessionKey struct{}

// FromContext returns the session stored in ctx, if present.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(Session)
	return sess, ok
}

// WithSession returns a copy of ctx carrying the given session.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

type sessionClaims struct {
	Category string `json:"category"`
	jwt.StandardClaims
}

// Middleware parses the bearer token and stores the resulting session in
// the request context. Requests without a valid token pass through
// unauthenticated; individual operations decide whether that is an error.
func Middleware(jwtKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims := &sessionClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return jwtKey, nil
			})
			if err != nil || !parsed.Valid {
				next.ServeHTTP(w, r)
				return
			}

			sess := Session{Username: claims.Subject, Category: claims.Category}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
