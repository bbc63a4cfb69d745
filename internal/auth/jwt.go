// Package auth verifies access tokens issued by the upstream identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Verifier validates HS256 access tokens and extracts the user id from the
// subject claim. It never issues tokens.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier creates a verifier from the auth config. Issuer and audience
// are only checked when configured.
func NewVerifier(cfg config.AuthConfig, opts ...jwt.ParserOption) *Verifier {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	if cfg.JWTAudience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.JWTAudience))
	}
	parserOpts = append(parserOpts, opts...)

	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		parser: jwt.NewParser(parserOpts...),
	}
}

// ValidateToken parses the token and returns the user id it was issued for.
func (v *Verifier) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims jwt.RegisteredClaims
	if _, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}
	return userID, nil
}
