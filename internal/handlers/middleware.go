package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codebench-2025.net/internal/config"
)

type MiddlewareProvider struct {
	SecretOption string
}

func New(cfg *config.JwtConfig) *MiddlewareProvider {
	return &MiddlewareProvider{
		SecretOption: cfg.Secret,
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.SecretOption)
}

// Protect wraps a handler with JWT bearer-token verification. With no
// secret configured the handler is served unprotected.
func (m *MiddlewareProvider) Protect(next http.Handler) http.Handler {
	if m.SecretOption == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return m.secret(), nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
