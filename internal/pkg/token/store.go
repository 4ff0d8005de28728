// Package token persists the bearer credential between CLI invocations and
// offers an unverified peek at its claims. Verification is the server's job;
// the client only reads the token to route admin commands and warn on expiry.
package token

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrUnreadable   = errors.New("stored token is unreadable")
	ErrTokenExpired = errors.New("stored token has expired")
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Claims are the fields of interest inside the bearer token.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Peek decodes the token's claims without verifying its signature.
func Peek(tokenString string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, ErrUnreadable
	}
	return &claims, nil
}

// CheckExpiry reports ErrTokenExpired when the token's exp claim is in the
// past. Tokens without claims the client can read are passed through; the
// server remains the authority.
func CheckExpiry(tokenString string, now time.Time) error {
	claims, err := Peek(tokenString)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return ErrTokenExpired
	}
	return nil
}
