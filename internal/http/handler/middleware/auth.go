package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid "Authorization: Bearer <jwt>" header.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			m.reject(w, r, "missing bearer token", nil)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.reject(w, r, "invalid bearer token", err)
			return
		}

		m.logs.Debugw("request authenticated",
			"subject", claims["sub"],
			"request_id", RequestIDFrom(r.Context()))
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	m.logs.Warnw("request rejected",
		"reason", reason,
		"error", err,
		"path", r.URL.Path,
		"request_id", RequestIDFrom(r.Context()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"Authentication failed","error":"` + reason + `"}`))
}
