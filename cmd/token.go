package cmd

import (
	"fmt"
	"time"

	"chainsentry/internal/config"
	"chainsentry/pkg/jwt"
)

// IssueToken signs an API bearer token for subject with the configured JWT_SECRET.
func IssueToken(subject string, ttl time.Duration) (string, error) {
	secret, err := config.LookupJWTSecret()
	if err != nil {
		return "", err
	}

	token, err := jwt.NewJWTService([]byte(secret)).Issue(jwt.TokenInfo{
		Subject:    subject,
		Scope:      "api",
		Expiration: ttl,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
