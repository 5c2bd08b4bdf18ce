// Package auth is the scaffold's authentication example: a single demo
// credential checked with bcrypt and a short-lived HS256 token. Swap the
// credential source for a user store before shipping anything real.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"stackpad/pkg/httputil"
)

// Claims are the token claims the API issues and verifies.
type Claims struct {
	Subject string
}

// Service issues and validates tokens for the demo credential.
type Service struct {
	signingKey   []byte
	ttl          time.Duration
	demoUser     string
	demoPassHash []byte
}

// New hashes the demo password once at startup and returns the service.
func New(signingKey string, ttl time.Duration, demoUser, demoPassword string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	return &Service{
		signingKey:   []byte(signingKey),
		ttl:          ttl,
		demoUser:     demoUser,
		demoPassHash: hash,
	}, nil
}

// Login checks the credentials and returns a signed token. The error is the
// same for unknown user and wrong password so callers cannot probe usernames.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.demoUser {
		return "", httputil.NewError(httputil.CodeUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.demoPassHash, []byte(password)); err != nil {
		return "", httputil.NewError(httputil.CodeUnauthorized, "invalid credentials")
	}
	return s.issue(username, time.Now())
}

func (s *Service) issue(subject string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		Issuer:    "stackpad-api",
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
func (s *Service) Validate(tokenString string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithIssuer("stackpad-api"),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, httputil.NewError(httputil.CodeUnauthorized, "invalid or expired token")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return Claims{}, httputil.NewError(httputil.CodeUnauthorized, "invalid or expired token")
	}
	return Claims{Subject: claims.Subject}, nil
}
